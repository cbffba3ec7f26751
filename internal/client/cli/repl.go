package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errUsage is returned by handlers that were given the wrong arguments; the
// REPL prints the handler's usage line instead of an error.
var errUsage = errors.New("usage")

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	track(err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Token(ctx context.Context) error

	Goto(ctx context.Context, args []string) error
	Ask(ctx context.Context, args []string) error
	Sessions(ctx context.Context) error
	NewChat(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error

	Weather(ctx context.Context, args []string) error
	Forecast(ctx context.Context, args []string) error
	Alerts(ctx context.Context, args []string) error
	Prices(ctx context.Context, args []string) error
	Trends(ctx context.Context, args []string) error
	Crops(ctx context.Context, args []string) error
	SoilTypes(ctx context.Context, args []string) error
}

const (
	helpGuest = "Available commands: register, login, goto <path>, ask <question>, weather, forecast, alerts, prices, trends, crops, soiltypes, exit"
	helpUser  = "Available commands: profile, update, token, logout, goto <path>, ask <question>, sessions, newchat [name], history <id>, weather, forecast, alerts, prices, trends, crops, soiltypes, exit"
)

var usage = map[string]string{
	"goto":      "Usage: goto <path>   (e.g. goto /chat?guest=true)",
	"ask":       "Usage: ask <question>",
	"history":   "Usage: history <session id>",
	"weather":   "Usage: weather <location>",
	"forecast":  "Usage: forecast <location> [days]",
	"alerts":    "Usage: alerts <location>",
	"prices":    "Usage: prices <crop> [state]",
	"trends":    "Usage: trends <crop[,crop...]> [week|month|3month|year]",
	"soiltypes": "Usage: soiltypes <state> [district]",
}

// runREPL reads commands line by line and dispatches them to a. The first
// word is the command, the rest are its arguments. The loop exits on
// scanner EOF or on "exit" / "quit".
//
// Handler errors are reported to the user and fed to a.track so the prompt
// reflects backend reachability; the loop itself never stops on an error.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("agro %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpUser)
			} else {
				printlnFn(helpGuest)
			}
			continue

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "profile":
			err = a.Profile(ctx)
		case "update":
			err = a.UpdateProfile(ctx)
		case "token":
			err = a.Token(ctx)

		case "goto":
			err = a.Goto(ctx, args)
		case "ask":
			err = a.Ask(ctx, args)
		case "sessions":
			err = a.Sessions(ctx)
		case "newchat":
			err = a.NewChat(ctx, args)
		case "history":
			err = a.History(ctx, args)

		case "weather":
			err = a.Weather(ctx, args)
		case "forecast":
			err = a.Forecast(ctx, args)
		case "alerts":
			err = a.Alerts(ctx, args)
		case "prices":
			err = a.Prices(ctx, args)
		case "trends":
			err = a.Trends(ctx, args)
		case "crops":
			err = a.Crops(ctx, args)
		case "soiltypes":
			err = a.SoilTypes(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		switch {
		case errors.Is(err, errUsage):
			printlnFn(usage[cmd])
			continue
		case err != nil:
			printlnFn("Error:", api.Message(err))
		}
		a.track(err)
	}
}
