package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/agroassist/internal/client/api"
	"github.com/dmitrijs2005/agroassist/internal/client/models"
	"github.com/dmitrijs2005/agroassist/internal/client/tokenstore"
)

const authOK = `{"user":{"id":1,"username":"ravi","phone_number":"+91999"},"message":"ok","access_token":"jwt-1"}`

func TestAuth_Login_PersistsToken(t *testing.T) {
	f := &fakeRequester{resp: authOK}
	store := tokenstore.NewMemory()
	svc := NewAuthService(f, store)
	ctx := context.Background()

	resp, err := svc.Login(ctx, models.LoginRequest{PhoneNumber: "+91999", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "ravi", resp.User.Username)
	assert.Equal(t, "POST", f.last().method)
	assert.Equal(t, "/auth/login", f.last().path)
	assert.JSONEq(t, `{"phone_number":"+91999","password":"pw"}`, bodyJSON(f.last().body))

	tok, ok := store.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "jwt-1", tok)
	assert.True(t, svc.IsAuthenticated(ctx))
}

func TestAuth_Register_PersistsToken(t *testing.T) {
	f := &fakeRequester{resp: authOK}
	store := tokenstore.NewMemory()
	svc := NewAuthService(f, store)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "ravi", PhoneNumber: "+91999", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "/auth/register", f.last().path)
	assert.JSONEq(t, `{"username":"ravi","phone_number":"+91999","password":"pw"}`, bodyJSON(f.last().body))
	assert.True(t, store.IsPresent(context.Background()))
}

func TestAuth_Login_FailureLeavesStoreUntouched(t *testing.T) {
	f := &fakeRequester{err: &api.RequestError{StatusCode: 401, Message: "invalid credentials"}}
	store := tokenstore.NewMemory()
	svc := NewAuthService(f, store)

	_, err := svc.Login(context.Background(), models.LoginRequest{PhoneNumber: "1", Password: "x"})
	require.ErrorIs(t, err, api.ErrRequestFailed)
	assert.Equal(t, "invalid credentials", err.Error())
	assert.False(t, store.IsPresent(context.Background()))
}

func TestAuth_Login_NoTokenInResponse(t *testing.T) {
	f := &fakeRequester{resp: `{"user":{"id":1},"message":"ok"}`}
	store := tokenstore.NewMemory()
	svc := NewAuthService(f, store)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.False(t, store.IsPresent(context.Background()))
}

func TestAuth_Login_StoreWriteFailure(t *testing.T) {
	svc := NewAuthService(&fakeRequester{resp: authOK}, brokenStore{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "u", Password: "p"})
	require.ErrorIs(t, err, errStoreDown)
	assert.Contains(t, err.Error(), "failed to save access token")
}

func TestAuth_ProfileEndpoints(t *testing.T) {
	ctx := context.Background()

	f := &fakeRequester{resp: `{"id":1,"username":"ravi","phone_number":"1","farm_size":2.5}`}
	svc := NewAuthService(f, tokenstore.NewMemory())
	u, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "GET", f.last().method)
	assert.Equal(t, "/auth/profile", f.last().path)
	require.NotNil(t, u.FarmSize)
	assert.Equal(t, 2.5, *u.FarmSize)

	size := 5.0
	f.resp = `{"message":"updated","user":{"id":1,"username":"ravi","farm_size":5}}`
	resp, err := svc.UpdateProfile(ctx, models.ProfileUpdate{FarmSize: &size})
	require.NoError(t, err)
	assert.Equal(t, "PUT", f.last().method)
	assert.Equal(t, "/auth/profile", f.last().path)
	assert.JSONEq(t, `{"farm_size":5}`, bodyJSON(f.last().body))
	assert.Equal(t, "updated", resp.Message)

	f.resp = `{"valid":true,"user_id":1}`
	tc, err := svc.CheckToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/auth/check-token", f.last().path)
	assert.True(t, tc.Valid)
	assert.Equal(t, int64(1), tc.UserID)
}

func TestAuth_Logout_IsLocal(t *testing.T) {
	f := &fakeRequester{}
	store := tokenstore.NewMemory()
	require.NoError(t, store.Set(context.Background(), "tok"))
	svc := NewAuthService(f, store)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, f.calls, "logout makes no request")
	assert.False(t, svc.IsAuthenticated(context.Background()))
}

func TestAuth_Logout_StoreError(t *testing.T) {
	svc := NewAuthService(&fakeRequester{}, brokenStore{})
	assert.True(t, errors.Is(svc.Logout(context.Background()), errStoreDown))
}
