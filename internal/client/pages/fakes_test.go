package pages

import (
	"context"
	"encoding/base64"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/session"
)

// ---- fake API ----

type fakeAPI struct {
	loginResp *models.AuthResponse
	loginErr  error

	registerResp *models.AuthResponse
	registerErr  error

	profileResp *models.Profile
	profileErr  error
	// gate, when set, blocks GetProfile until it is closed.
	gate chan struct{}

	updateResp *models.Profile
	updateErr  error

	loginCalls    atomic.Int32
	registerCalls atomic.Int32
	profileCalls  atomic.Int32
	updateCalls   atomic.Int32

	mu           sync.Mutex
	lastToken    string
	lastLogin    models.LoginForm
	lastRegister models.RegisterForm
	lastTargets  models.TargetsForm
}

func (f *fakeAPI) Login(ctx context.Context, form models.LoginForm) (*models.AuthResponse, error) {
	f.loginCalls.Add(1)
	f.mu.Lock()
	f.lastLogin = form
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Register(ctx context.Context, form models.RegisterForm) (*models.AuthResponse, error) {
	f.registerCalls.Add(1)
	f.mu.Lock()
	f.lastRegister = form
	f.mu.Unlock()
	return f.registerResp, f.registerErr
}

func (f *fakeAPI) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	f.profileCalls.Add(1)
	f.mu.Lock()
	f.lastToken = token
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	return f.profileResp, f.profileErr
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, token string, form models.TargetsForm) (*models.Profile, error) {
	f.updateCalls.Add(1)
	f.mu.Lock()
	f.lastToken = token
	f.lastTargets = form
	f.mu.Unlock()
	return f.updateResp, f.updateErr
}

// ---- recording navigator / notifier ----

type recorder struct {
	mu       sync.Mutex
	routes   []Route
	messages []string
}

func (r *recorder) Navigate(route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
}

func (r *recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recorder) Routes() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Route(nil), r.routes...)
}

func (r *recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// ---- failing store ----

type brokenStore struct {
	err error
}

func (s brokenStore) Get(context.Context) (string, error) { return "", s.err }
func (s brokenStore) Set(context.Context, string) error   { return s.err }
func (s brokenStore) Clear(context.Context) error         { return s.err }

// ---- helpers ----

func newDeps(t *testing.T, api *fakeAPI) (Deps, *session.MemoryStore, *recorder) {
	t.Helper()
	store := session.NewMemoryStore()
	rec := &recorder{}
	return Deps{API: api, Store: store, Nav: rec, Notifier: rec}, store, rec
}

func tokenWithPayload(payload string) string {
	return "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + ".sig"
}
