package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bankcli/internal/client/models"
	"github.com/dmitrijs2005/bankcli/internal/client/services"
)

func TestLogin_Success(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "secret", "alice@example.com")

	app := newTestApp(t, newStore(t, ""), "")
	app.auth.loginToken = makeToken(t, "alice@example.com", time.Now().Add(time.Hour))

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, "alice@example.com", app.auth.lastUser)
	assert.Equal(t, "secret", app.auth.lastPass)
	assert.True(t, app.isLoggedIn())
	assert.Contains(t, out.String(), "Logged in as alice@example.com")
}

func TestLogin_FailurePrintsMessage(t *testing.T) {
	out := captureOutput(t)
	stubInputs(t, "wrong", "alice@example.com")

	app := newTestApp(t, newStore(t, ""), "")
	app.auth.loginErr = &services.Failure{Message: services.MsgLoginFailed, Err: errors.New("401")}

	err := app.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, services.MsgLoginFailed, out.String())
	assert.False(t, app.isLoggedIn())
}

func TestLogin_InputError(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "secret")

	app := newTestApp(t, newStore(t, ""), "")
	require.Error(t, app.Login(context.Background()))
	assert.Empty(t, app.auth.lastUser)
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out := captureOutput(t)
		stubInputs(t, "secret", "bob@example.com")
		app := newTestApp(t, newStore(t, ""), "")

		require.NoError(t, app.Register(context.Background()))
		assert.Equal(t, "bob@example.com", app.auth.lastUser)
		assert.Equal(t, "secret", app.auth.lastPass)
		assert.Contains(t, out.String(), "Registration successful")
	})

	t.Run("backend message", func(t *testing.T) {
		out := captureOutput(t)
		stubInputs(t, "secret", "bob@example.com")
		app := newTestApp(t, newStore(t, ""), "")
		app.auth.regErr = &services.Failure{Message: "Email already registered"}

		require.Error(t, app.Register(context.Background()))
		assert.Equal(t, "Email already registered", out.String())
	})

	t.Run("plain error", func(t *testing.T) {
		out := captureOutput(t)
		stubInputs(t, "secret", "bob@example.com")
		app := newTestApp(t, newStore(t, ""), "")
		app.auth.regErr = errors.New("disk full")

		require.Error(t, app.Register(context.Background()))
		assert.Equal(t, "Error: disk full", out.String())
	})
}

func TestLogout_Idempotent(t *testing.T) {
	out := captureOutput(t)
	app := newTestApp(t, newStore(t, makeToken(t, "a@b.c", time.Now().Add(time.Hour))), "")

	require.NoError(t, app.Logout(context.Background()))
	require.NoError(t, app.Logout(context.Background()))

	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "Logged out\nLogged out", out.String())
}

func TestWhoAmI(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		out := captureOutput(t)
		app := newTestApp(t, newStore(t, ""), "")

		require.NoError(t, app.WhoAmI(context.Background()))
		assert.Equal(t, "Not logged in", out.String())
		assert.Zero(t, app.auth.profiles)
	})

	t.Run("with profile", func(t *testing.T) {
		out := captureOutput(t)
		app := newTestApp(t, newStore(t, makeToken(t, "a@b.c", time.Now().Add(time.Hour))), "")
		id := uuid.MustParse("7b0c6f0e-2a4f-4a55-9a57-0a5f7c0b1d2e")
		app.auth.profile = &models.User{ID: id, Email: "a@b.c", IsActive: true}

		require.NoError(t, app.WhoAmI(context.Background()))
		assert.Equal(t, "a@b.c\nAccount holder: a@b.c (active, id 7b0c6f0e-2a4f-4a55-9a57-0a5f7c0b1d2e)", out.String())
	})

	t.Run("profile fails", func(t *testing.T) {
		out := captureOutput(t)
		app := newTestApp(t, newStore(t, makeToken(t, "a@b.c", time.Now().Add(time.Hour))), "")
		app.auth.profileErr = &services.Failure{Message: services.MsgProfileFailed}

		require.Error(t, app.WhoAmI(context.Background()))
		assert.Equal(t, "a@b.c\n"+services.MsgProfileFailed, out.String())
	})
}
