package session

import "github.com/dmitrijs2005/agroassist/internal/client/models"

type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusLoading         Status = "loading"
	StatusAuthenticated   Status = "authenticated"
	StatusError           Status = "error"
)

// State is an immutable snapshot of the session. User is non-nil when
// authenticated, and also in the error state that follows a failed profile
// update, where the previous user is kept. Error is set only in the error
// state. Callers must not modify *User.
type State struct {
	Status Status
	User   *models.User
	Error  string
}

func (s State) LoggedIn() bool {
	return s.User != nil
}

func (s State) String() string {
	switch s.Status {
	case StatusAuthenticated:
		return "authenticated(" + s.User.Username + ")"
	case StatusError:
		return "error(" + s.Error + ")"
	default:
		return string(s.Status)
	}
}

func unauthenticated() State {
	return State{Status: StatusUnauthenticated}
}

func authenticated(u *models.User) State {
	return State{Status: StatusAuthenticated, User: u}
}

func failed(user *models.User, msg string) State {
	return State{Status: StatusError, User: user, Error: msg}
}
