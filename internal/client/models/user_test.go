package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileUpdate_SerializesOnlySuppliedFields(t *testing.T) {
	size := 5.0
	b, err := json.Marshal(ProfileUpdate{FarmSize: &size})
	require.NoError(t, err)
	assert.JSONEq(t, `{"farm_size":5}`, string(b))
}

func TestProfileUpdate_IsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())

	v := "Punjab"
	assert.False(t, ProfileUpdate{State: &v}.IsEmpty())
	assert.False(t, ProfileUpdate{Crops: []string{}}.IsEmpty())
}

func TestLoginRequest_OmitsUnsetIdentifiers(t *testing.T) {
	b, err := json.Marshal(LoginRequest{PhoneNumber: "+911234", Password: "pw"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone_number":"+911234","password":"pw"}`, string(b))
}

func TestRegisterRequest_OmitsEmptyEmail(t *testing.T) {
	b, err := json.Marshal(RegisterRequest{Username: "ravi", PhoneNumber: "1", Password: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"ravi","phone_number":"1","password":"p"}`, string(b))
}

func TestUser_DecodesWithoutOptionalFields(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"username":"ravi","phone_number":"1","is_active":true,"created_at":"2024-01-01T00:00:00"}`), &u))

	assert.Equal(t, int64(7), u.ID)
	assert.Nil(t, u.Email)
	assert.Nil(t, u.FarmSize)
	assert.Nil(t, u.Crops)
	assert.True(t, u.IsActive)
}

func TestSessionWithMessages_FlattensSessionFields(t *testing.T) {
	var s SessionWithMessages
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"name":"Rice","message_count":2,"messages":[{"id":1,"content":"hi","role":"user"},{"id":2,"content":"hello","role":"assistant"}]}`), &s))

	assert.Equal(t, int64(3), s.ID)
	assert.Equal(t, "Rice", s.Name)
	require.Len(t, s.Messages, 2)
	assert.Equal(t, RoleAssistant, s.Messages[1].Role)
}
