package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/config"
	"github.com/dmitrijs2005/agroassist/internal/client/guest"
	"github.com/dmitrijs2005/agroassist/internal/client/services"
	"github.com/dmitrijs2005/agroassist/internal/client/session"
	"github.com/dmitrijs2005/agroassist/internal/client/tokenstore"
	"github.com/dmitrijs2005/agroassist/internal/filex"
	"github.com/dmitrijs2005/agroassist/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

const homeLocation = "/"

type App struct {
	config  *config.Config
	logger  logging.Logger
	tokens  tokenstore.Store
	session *session.Session

	auth    services.AuthService
	chat    services.ChatService
	market  services.MarketService
	weather services.WeatherService
	crops   services.CropService
	soil    services.SoilService

	reader   *bufio.Reader
	out      io.Writer
	location string
	chatID   int64
	Mode     Mode

	closers []func() error
}

// NewApp builds the token store selected by c, the executor and every
// service over it, and a session bound to the auth service.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	tokens, closeStore, err := openTokenStore(ctx, c, logger)
	if err != nil {
		return nil, err
	}

	exec := api.NewExecutor(c.APIBaseURL, tokens, c.RequestTimeout, logger)
	auth := services.NewAuthService(exec, tokens)

	a := &App{
		config:   c,
		logger:   logger,
		tokens:   tokens,
		session:  session.New(auth, logger),
		auth:     auth,
		chat:     services.NewChatService(exec),
		market:   services.NewMarketService(exec),
		weather:  services.NewWeatherService(exec),
		crops:    services.NewCropService(exec),
		soil:     services.NewSoilService(exec),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		location: homeLocation,
		Mode:     ModeOnline,
	}
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}
	return a, nil
}

func openTokenStore(ctx context.Context, c *config.Config, logger logging.Logger) (tokenstore.Store, func() error, error) {
	switch c.TokenStore {
	case config.TokenStoreMemory:
		return tokenstore.NewMemory(), nil, nil
	case config.TokenStoreSQLite:
		if filex.IsFilePath(c.TokenDB) {
			if err := filex.EnsureParentDir(c.TokenDB); err != nil {
				return nil, nil, fmt.Errorf("error preparing token database: %w", err)
			}
		}
		s, err := tokenstore.OpenSQLite(ctx, c.TokenDB, logger, tokenstore.WithPassphrase(c.TokenPassphrase))
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing token database: %w", err)
		}
		return s, s.Close, nil
	case config.TokenStoreRedis:
		r := tokenstore.NewRedis(c.RedisAddr, logger)
		if err := r.Ping(ctx); err != nil {
			logger.Warn(ctx, "redis unreachable, token will read as absent", "addr", c.RedisAddr, "error", err)
		}
		return r, r.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown token store %q", c.TokenStore)
	}
}

// Run bootstraps the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	unsubscribe := a.session.Subscribe(func(s session.State) {
		a.logger.Info(ctx, "session state changed", "state", s.String())
	})
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome to agroassist (type 'help' for commands)")
	if err := a.session.Bootstrap(ctx); err != nil {
		a.track(err)
		fmt.Fprintf(a.out, "Could not restore your session (%s), please log in again.\n", api.Message(err))
	}
	if st := a.session.State(); st.LoggedIn() {
		fmt.Fprintf(a.out, "Signed in as %s\n", st.User.Username)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(lineReader{a.reader}))
}

func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.session.State().LoggedIn()
}

func (a *App) isGuest() bool {
	return guest.FromURL(a.location)
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

// track records backend reachability from the outcome of the last request.
func (a *App) track(err error) {
	switch {
	case errors.Is(err, api.ErrNetworkUnreachable):
		a.setMode(ModeOffline)
	case err == nil, errors.Is(err, api.ErrRequestFailed), errors.Is(err, session.ErrAuthenticationExpired):
		a.setMode(ModeOnline)
	}
}

func (a *App) status() string {
	var parts []string
	st := a.session.State()
	switch {
	case st.LoggedIn():
		parts = append(parts, st.User.Username)
	case a.isGuest():
		parts = append(parts, "guest")
	}
	parts = append(parts, a.location)
	if a.Mode == ModeOffline {
		parts = append(parts, string(ModeOffline))
	}
	return "(" + strings.Join(parts, " ") + ")"
}
