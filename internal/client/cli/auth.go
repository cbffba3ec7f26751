package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/agroassist/internal/client/guest"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
	"github.com/dmitrijs2005/agroassist/internal/client/tokeninfo"
	"github.com/dmitrijs2005/agroassist/internal/client/tokenstore"
)

var errNotLoggedIn = errors.New("you are not logged in; use 'login' or 'register'")

// now is a seam for tests.
var now = time.Now

// Register prompts for the account fields and signs the new user in.
// Email is optional.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email (Enter to skip)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, phone, string(password), email); err != nil {
		return err
	}
	a.signedIn()
	return nil
}

// Login prompts for phone number and password.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, phone, string(password)); err != nil {
		return err
	}
	a.signedIn()
	return nil
}

// signedIn leaves guest mode and forgets any chat of a previous user.
func (a *App) signedIn() {
	a.location = guest.Strip(a.location)
	a.chatID = 0
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.session.State().User.Username)
}

// Logout forgets the token locally; no request is made.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.chatID = 0
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	u, err := a.auth.GetProfile(ctx)
	if err != nil {
		return err
	}
	printUser(a.out, u)
	return nil
}

// UpdateProfile prompts for each editable field; only answered fields are
// sent.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var (
		upd models.ProfileUpdate
		err error
	)
	text := []struct {
		prompt string
		dst    **string
	}{
		{"Full name", &upd.FullName},
		{"Email", &upd.Email},
		{"Preferred language", &upd.PreferredLanguage},
		{"State", &upd.State},
		{"District", &upd.District},
		{"Village", &upd.Village},
		{"Farm location", &upd.FarmLocation},
		{"Farm size unit", &upd.FarmSizeUnit},
		{"Soil type", &upd.SoilType},
	}
	for _, f := range text {
		if *f.dst, err = optionalText(a.reader, f.prompt, a.out); err != nil {
			return err
		}
	}
	if upd.FarmSize, err = optionalFloat(a.reader, "Farm size", a.out); err != nil {
		return err
	}
	if upd.Crops, err = optionalList(a.reader, "Crops", a.out); err != nil {
		return err
	}
	if upd.Livestock, err = optionalList(a.reader, "Livestock", a.out); err != nil {
		return err
	}

	if upd.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}
	if err := a.session.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	printUser(a.out, a.session.State().User)
	return nil
}

// Token shows what the client can tell about the stored token without
// asking the server.
func (a *App) Token(ctx context.Context) error {
	tok, ok := a.tokens.Get(ctx)
	if !ok {
		fmt.Fprintln(a.out, "No token stored.")
		return nil
	}

	fmt.Fprintf(a.out, "Token: %s\n", mask(tok))
	if s, ok := a.tokens.(tokenstore.Stamped); ok {
		if at, ok := s.StoredAt(ctx); ok {
			fmt.Fprintf(a.out, "Stored at: %s\n", at.Local().Format(time.DateTime))
		}
	}

	info, err := tokeninfo.Inspect(tok)
	if err != nil {
		fmt.Fprintln(a.out, "Token is opaque; no claims to show.")
		return nil
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "Subject: %s\n", info.Subject)
	}
	t := now()
	switch {
	case info.ExpiresAt.IsZero():
		fmt.Fprintln(a.out, "Expires: never")
	case info.Expired(t):
		fmt.Fprintf(a.out, "Expired at %s\n", info.ExpiresAt.Local().Format(time.DateTime))
	default:
		fmt.Fprintf(a.out, "Expires in %s\n", info.Remaining(t).Round(time.Second))
	}
	return nil
}

func mask(tok string) string {
	if len(tok) <= 12 {
		return strings.Repeat("*", len(tok))
	}
	return tok[:6] + "..." + tok[len(tok)-6:]
}
