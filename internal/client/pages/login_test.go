package pages

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/feedback"
	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validLogin = models.LoginForm{UsernameOrEmail: "alice", Password: "secret"}

func TestLogin_Submit_Success(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{loginResp: &models.AuthResponse{Token: "tok-1"}}
	deps, store, rec := newDeps(t, api)

	p := NewLogin(deps)
	p.Activate()

	require.NoError(t, p.Submit(ctx, validLogin))

	tok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, []Route{RouteDashboard}, rec.Routes())
	assert.Empty(t, rec.Messages())
	assert.Equal(t, validLogin, api.lastLogin)
	assert.False(t, p.Submitting())
}

func TestLogin_Submit_Failures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "404 without body",
			err:     &client.APIError{Status: 404},
			wantMsg: feedback.MsgAccountNotFound,
		},
		{
			name:    "401 without body",
			err:     &client.APIError{Status: 401},
			wantMsg: feedback.MsgInvalidCredentials,
		},
		{
			name:    "500 with message",
			err:     &client.APIError{Status: 500, Body: &models.ErrorBody{Message: "boom"}},
			wantMsg: "boom",
		},
		{
			name:    "500 without body",
			err:     &client.APIError{Status: 500},
			wantMsg: feedback.MsgLoginFailed,
		},
		{
			name:    "user not found in error field",
			err:     &client.APIError{Status: 409, Body: &models.ErrorBody{Error: "User Not Found"}},
			wantMsg: feedback.MsgAccountNotFound,
		},
		{
			name:    "network failure",
			err:     fmt.Errorf("%w: dial tcp: connection refused", client.ErrUnavailable),
			wantMsg: feedback.MsgNetworkError,
		},
		{
			name:    "malformed success body",
			err:     client.ErrMalformedResponse,
			wantMsg: feedback.MsgNetworkError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			api := &fakeAPI{loginErr: tt.err}
			deps, store, rec := newDeps(t, api)

			p := NewLogin(deps)
			p.Activate()

			err := p.Submit(ctx, validLogin)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))

			assert.Equal(t, []string{tt.wantMsg}, rec.Messages())
			assert.Empty(t, rec.Routes())
			assert.False(t, p.Submitting())

			_, err = store.Get(ctx)
			assert.Error(t, err)
		})
	}
}

func TestLogin_Submit_ValidationFailsWithoutRequest(t *testing.T) {
	api := &fakeAPI{loginResp: &models.AuthResponse{Token: "tok"}}
	deps, _, rec := newDeps(t, api)

	p := NewLogin(deps)
	p.Activate()

	err := p.Submit(context.Background(), models.LoginForm{UsernameOrEmail: "alice"})
	require.Error(t, err)

	assert.Zero(t, api.loginCalls.Load())
	require.Len(t, rec.Messages(), 1)
	assert.Contains(t, rec.Messages()[0], "password")
	assert.False(t, p.Submitting())
}

func TestLogin_Submit_RejectsSecondSubmitWhileInFlight(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{loginResp: &models.AuthResponse{Token: "tok"}, gate: make(chan struct{})}
	deps, _, _ := newDeps(t, api)

	p := NewLogin(deps)
	p.Activate()

	first := make(chan error, 1)
	go func() { first <- p.Submit(ctx, validLogin) }()

	require.Eventually(t, func() bool { return api.loginCalls.Load() == 1 }, time.Second, time.Millisecond)
	assert.True(t, p.Submitting())

	err := p.Submit(ctx, validLogin)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.EqualValues(t, 1, api.loginCalls.Load())

	close(api.gate)
	require.NoError(t, <-first)
	assert.False(t, p.Submitting())
}

func TestLogin_Submit_StaleCompletionIsDropped(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{loginResp: &models.AuthResponse{Token: "tok"}, gate: make(chan struct{})}
	deps, store, rec := newDeps(t, api)

	p := NewLogin(deps)
	p.Activate()

	result := make(chan error, 1)
	go func() { result <- p.Submit(ctx, validLogin) }()

	require.Eventually(t, func() bool { return api.loginCalls.Load() == 1 }, time.Second, time.Millisecond)
	p.Deactivate()
	close(api.gate)

	assert.ErrorIs(t, <-result, ErrPageInactive)
	assert.Empty(t, rec.Routes())
	assert.Empty(t, rec.Messages())

	_, err := store.Get(ctx)
	assert.Error(t, err)
}

func TestLogin_Submit_StoreFailure(t *testing.T) {
	api := &fakeAPI{loginResp: &models.AuthResponse{Token: "tok"}}
	deps, _, rec := newDeps(t, api)
	deps.Store = brokenStore{err: errors.New("disk full")}

	p := NewLogin(deps)
	p.Activate()

	err := p.Submit(context.Background(), validLogin)
	require.Error(t, err)
	assert.Equal(t, []string{feedback.MsgLoginFailed}, rec.Messages())
	assert.Empty(t, rec.Routes())
}
