package cli

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/agroassist/internal/client/guest"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
)

// guardedPrefixes are locations that need a signed-in user unless the
// location itself is in guest mode.
var guardedPrefixes = []string{"/chat", "/history", "/settings"}

func isGuarded(path string) bool {
	for _, p := range guardedPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Goto moves to another location. Guest mode carries over unless the target
// sets the guest parameter itself.
func (a *App) Goto(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	target := args[0]
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid location %q", target)
	}

	next := guest.Preserve(target, a.isGuest())
	if u.Query().Has(guest.Param) && !guest.FromURL(target) {
		next = guest.Strip(target)
	}

	if isGuarded(u.Path) && !guest.FromURL(next) && !a.session.RequireAuth() {
		fmt.Fprintln(a.out, "Please log in, or add ?guest=true to continue as a guest.")
		a.location = homeLocation
		return nil
	}
	a.location = next
	return nil
}

// Ask sends a question to the assistant. Guests and signed-out users get a
// one-off answer; signed-in users talk within a chat session that is
// created on first use.
func (a *App) Ask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	question := strings.Join(args, " ")

	if a.isGuest() || !a.isLoggedIn() {
		resp, err := a.chat.DirectQuery(ctx, question)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.out, resp.Response)
		return nil
	}

	if a.chatID == 0 {
		if err := a.NewChat(ctx, nil); err != nil {
			return err
		}
	}
	resp, err := a.chat.SendMessage(ctx, a.chatID, question)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, resp.AIMessage.Content)
	return nil
}

func (a *App) Sessions(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	list, err := a.chat.ListSessions(ctx, false, 0)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No chats yet. Use 'ask' or 'newchat' to start one.")
		return nil
	}
	tw := newTable(a.out, "ID", "NAME", "MESSAGES", "UPDATED", "")
	for _, s := range list {
		marker := ""
		if s.ID == a.chatID {
			marker = "*"
		}
		tw.row(s.ID, s.Name, s.MessageCount, s.UpdatedAt, marker)
	}
	return tw.flush()
}

// NewChat starts a chat session and makes it current.
func (a *App) NewChat(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	resp, err := a.chat.CreateSession(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.chatID = resp.ID
	a.location = fmt.Sprintf("/chat/%d", resp.ID)
	fmt.Fprintf(a.out, "Started chat #%d %s\n", resp.ID, resp.Name)
	if resp.WelcomeMessage.Content != "" {
		fmt.Fprintln(a.out, resp.WelcomeMessage.Content)
	}
	return nil
}

// History prints a chat session and makes it current.
func (a *App) History(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errUsage
	}
	s, err := a.chat.GetSession(ctx, id, false)
	if err != nil {
		return err
	}
	a.chatID = s.ID
	a.location = fmt.Sprintf("/chat/%d", s.ID)

	fmt.Fprintf(a.out, "#%d %s\n", s.ID, s.Name)
	for _, m := range s.Messages {
		who := "You"
		if m.Role == models.RoleAssistant {
			who = "Assistant"
		}
		fmt.Fprintf(a.out, "%s: %s\n", who, m.Content)
	}
	return nil
}
