package cli

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
)

// captureOutput redirects printlnFn and returns a func reporting everything
// printed so far.
func captureOutput(t *testing.T) func() string {
	t.Helper()
	var (
		mu  sync.Mutex
		buf strings.Builder
	)
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Fprintln(&buf, a...)
	}
	t.Cleanup(func() { printlnFn = orig })
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		return buf.String()
	}
}

// stubInputs answers text prompts in order and returns password for
// password prompts.
func stubInputs(t *testing.T, password []byte, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAPI struct {
	loginResp *models.AuthResponse
	loginErr  error
	lastLogin models.LoginForm

	registerResp *models.AuthResponse
	registerErr  error
	lastRegister models.RegisterForm

	profile      *models.Profile
	profileErr   error
	profileCalls int

	updateErr   error
	lastTargets models.TargetsForm
}

func (f *fakeAPI) Login(_ context.Context, form models.LoginForm) (*models.AuthResponse, error) {
	f.lastLogin = form
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, form models.RegisterForm) (*models.AuthResponse, error) {
	f.lastRegister = form
	return f.registerResp, f.registerErr
}

func (f *fakeAPI) GetProfile(_ context.Context, _ string) (*models.Profile, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

func (f *fakeAPI) UpdateProfile(_ context.Context, _ string, form models.TargetsForm) (*models.Profile, error) {
	f.lastTargets = form
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p := &models.Profile{
		MonthlyIncome:        form.MonthlyIncome,
		MonthlySavingsTarget: form.MonthlySavingsTarget,
		MonthlyExpenseTarget: form.MonthlyExpenseTarget,
	}
	f.profile = p
	return p, nil
}

func userToken(name string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"` + name + `"}`))
	return "eyJhbGciOiJIUzI1NiJ9." + payload + ".sig"
}

func lines(s ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(s, "\n") + "\n"))
}
