// Package session holds the authentication state of one application run.
//
// A Session starts in the loading state and moves between unauthenticated,
// loading, authenticated and error as Bootstrap, Login, Register, Logout and
// UpdateProfile run. Every transition replaces the whole snapshot under a
// mutex, so readers never observe fields of two different users. Network
// calls of overlapping operations are not serialized, but their final steps
// are: the last one to finish decides both the stored token and the state.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
	"github.com/dmitrijs2005/agroassist/internal/client/services"
	"github.com/dmitrijs2005/agroassist/internal/logging"
)

// ErrAuthenticationExpired is returned by Bootstrap when the stored token
// was rejected and has been cleared.
var ErrAuthenticationExpired = errors.New("authentication expired")

// ErrTokenCleared is returned by an operation whose token was removed by an
// overlapping operation before it could publish its result.
var ErrTokenCleared = errors.New("token cleared during operation")

// Listener is called after every state transition with the new snapshot.
type Listener func(State)

type Session struct {
	auth   services.AuthService
	logger logging.Logger

	// seq serializes transitions: token reconciliation, the snapshot swap
	// and listener delivery happen as one step.
	seq sync.Mutex

	mu        sync.Mutex
	state     State
	listeners map[int]Listener
	nextID    int
}

func New(auth services.AuthService, logger logging.Logger) *Session {
	return &Session{
		auth:      auth,
		logger:    logger,
		state:     State{Status: StatusLoading},
		listeners: make(map[int]Listener),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
//
// Listeners run synchronously, one transition at a time and in the order
// the transitions were applied, so the last snapshot a listener receives is
// the current state. A listener may call State but must not start another
// Session operation.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// RequireAuth reports whether a guarded page may render: the user is
// logged in or the session is still loading.
func (s *Session) RequireAuth() bool {
	st := s.State()
	return st.LoggedIn() || st.Status == StatusLoading
}

// transition computes the next state with finish and publishes it. finish
// runs under seq, so any token store change it makes is never interleaved
// with another operation's final step.
func (s *Session) transition(ctx context.Context, finish func(prev State) State) {
	s.seq.Lock()
	defer s.seq.Unlock()

	next := finish(s.State())

	s.mu.Lock()
	prev := s.state
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	if prev.Status != next.Status || prev.User != next.User {
		s.logger.Debug(ctx, "session transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range listeners {
		l(next)
	}
}

func (s *Session) startLoading(ctx context.Context, keepUser bool) {
	s.transition(ctx, func(prev State) State {
		if keepUser {
			return State{Status: StatusLoading, User: prev.User}
		}
		return State{Status: StatusLoading}
	})
}

// Bootstrap validates a stored token against the profile endpoint. Without a
// token it ends unauthenticated and returns nil. When the profile fetch
// fails the token is cleared and the returned error wraps
// ErrAuthenticationExpired.
func (s *Session) Bootstrap(ctx context.Context) (err error) {
	var user *models.User
	defer func() {
		s.transition(ctx, func(State) State {
			if err != nil {
				s.clearToken(ctx)
				return unauthenticated()
			}
			if user == nil {
				return unauthenticated()
			}
			if !s.auth.IsAuthenticated(ctx) {
				err = fmt.Errorf("%w: %w", ErrAuthenticationExpired, ErrTokenCleared)
				return unauthenticated()
			}
			s.logger.Info(ctx, "session restored", "user", user.Username)
			return authenticated(user)
		})
	}()

	if !s.auth.IsAuthenticated(ctx) {
		return nil
	}

	user, err = s.auth.GetProfile(ctx)
	if err != nil {
		s.logger.Warn(ctx, "stored token rejected", "error", err)
		return fmt.Errorf("%w: %w", ErrAuthenticationExpired, err)
	}
	return nil
}

// Login authenticates by phone number and loads the profile.
func (s *Session) Login(ctx context.Context, phone, password string) error {
	return s.signIn(ctx, "login", func() error {
		_, err := s.auth.Login(ctx, models.LoginRequest{PhoneNumber: phone, Password: password})
		return err
	})
}

// Register creates the account, then behaves like Login. An empty email is
// left out of the request.
func (s *Session) Register(ctx context.Context, username, phone, password, email string) error {
	return s.signIn(ctx, "registration", func() error {
		_, err := s.auth.Register(ctx, models.RegisterRequest{
			Username:    username,
			PhoneNumber: phone,
			Password:    password,
			Email:       email,
		})
		return err
	})
}

// signIn runs authenticate, then loads the profile. The final step clears
// the token on failure, and on success publishes authenticated only while a
// token is still stored; if an overlapping failure or logout removed it the
// attempt fails with ErrTokenCleared.
func (s *Session) signIn(ctx context.Context, op string, authenticate func() error) (err error) {
	s.startLoading(ctx, false)

	var user *models.User
	defer func() {
		s.transition(ctx, func(State) State {
			if err == nil && user == nil {
				err = fmt.Errorf("%s: empty profile", op)
			}
			if err == nil && !s.auth.IsAuthenticated(ctx) {
				err = ErrTokenCleared
			}
			if err != nil {
				s.clearToken(ctx)
				s.logger.Warn(ctx, op+" failed", "error", err)
				return failed(nil, message(err, op+" failed"))
			}
			s.logger.Info(ctx, op+" succeeded", "user", user.Username)
			return authenticated(user)
		})
	}()

	if err = authenticate(); err != nil {
		return err
	}
	user, err = s.auth.GetProfile(ctx)
	return err
}

// Logout clears the token locally; no request is made.
func (s *Session) Logout(ctx context.Context) {
	s.transition(ctx, func(State) State {
		s.clearToken(ctx)
		return unauthenticated()
	})
	s.logger.Info(ctx, "logged out")
}

// UpdateProfile sends only the fields set in update and replaces the user
// with the profile the server returns. On failure the previous user is kept
// and the state carries the error message.
func (s *Session) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (err error) {
	prev := s.State()
	s.startLoading(ctx, true)

	var user *models.User
	defer func() {
		s.transition(ctx, func(State) State {
			keep := prev.User
			if !s.auth.IsAuthenticated(ctx) {
				keep = nil
				if err == nil {
					err = ErrTokenCleared
				}
			}
			if err != nil {
				s.logger.Warn(ctx, "profile update failed", "error", err)
				return failed(keep, message(err, "profile update failed"))
			}
			return authenticated(user)
		})
	}()

	resp, err := s.auth.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}
	user = &resp.User
	return nil
}

func (s *Session) clearToken(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear token", "error", err)
	}
}

func message(err error, fallback string) string {
	if msg := api.Message(err); msg != "" {
		return msg
	}
	return fallback
}
