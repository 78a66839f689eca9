package pages

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/expensetracker/internal/client/feedback"
	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/token"
	"github.com/dmitrijs2005/expensetracker/internal/common"
)

const defaultGreetingName = "User"

// Dashboard shows the signed-in user's monthly targets.
type Dashboard struct {
	base

	// guarded by lifecycle.mu
	loading     bool
	profile     *models.Profile
	displayName string
}

// DashboardView is a consistent snapshot of the dashboard state.
type DashboardView struct {
	Loading bool
	// Name is the decoded token name, else the profile username, else "User".
	Name string
	// Profile is nil when the fetch failed or has not finished.
	Profile *models.Profile
}

func NewDashboard(d Deps) *Dashboard {
	return &Dashboard{base: base{Deps: d.withDefaults()}}
}

// Activate mounts the page and starts the session bootstrap:
//
//   - no token: navigate to the login route, no request is made;
//   - token: decode a display name from it (best effort), then fetch the
//     profile in the background. Loading is true until the fetch settles;
//     a failed fetch leaves the profile unset and shows nothing.
//
// The returned channel is closed once the bootstrap has settled.
func (p *Dashboard) Activate(ctx context.Context) <-chan struct{} {
	gen := p.activate()
	done := make(chan struct{})

	p.apply(gen, func() {
		p.loading = true
		p.profile = nil
		p.displayName = ""
	})

	tok, err := p.Store.Get(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNoSession) {
			p.Logger.Warn(ctx, "reading session failed", "error", err)
		}
		p.apply(gen, func() { p.loading = false })
		p.Nav.Navigate(RouteLogin)
		close(done)
		return done
	}

	if name, ok := token.DisplayName(tok); ok {
		p.apply(gen, func() { p.displayName = name })
	}

	go func() {
		defer close(done)

		profile, err := p.API.GetProfile(ctx, tok)
		applied := p.apply(gen, func() {
			p.loading = false
			if err == nil {
				p.profile = profile
			}
		})

		switch {
		case !applied:
			p.Logger.Debug(ctx, "dropping stale profile response")
		case err != nil:
			p.Logger.Debug(ctx, "profile fetch failed", "error", err)
		}
	}()

	return done
}

// View returns the current state.
func (p *Dashboard) View() DashboardView {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := DashboardView{Loading: p.loading, Name: p.displayName}
	if p.profile != nil {
		cp := *p.profile
		v.Profile = &cp
		if v.Name == "" {
			v.Name = cp.Username
		}
	}
	if v.Name == "" {
		v.Name = defaultGreetingName
	}
	return v
}

// Logout drops the session token and returns to the login route. It never
// calls the API and is safe to call without a session.
func (p *Dashboard) Logout(ctx context.Context) error {
	err := p.Store.Clear(ctx)
	if err != nil {
		p.Logger.Warn(ctx, "clearing session failed", "error", err)
	}
	p.Nav.Navigate(RouteLogin)
	return err
}

// UpdateTargets saves new monthly targets and replaces the shown profile
// with the server's answer. Failures show feedback.MsgProfileUpdateFailed;
// a missing session sends the user to the login route.
func (p *Dashboard) UpdateTargets(ctx context.Context, form models.TargetsForm) error {
	if !p.begin() {
		return ErrSubmissionInFlight
	}
	defer p.end()

	gen := p.generation()

	if err := form.Validate(); err != nil {
		p.show(gen, err.Error())
		return err
	}

	tok, err := p.Store.Get(ctx)
	if err != nil {
		if p.apply(gen, nil) {
			p.Nav.Navigate(RouteLogin)
		}
		return err
	}

	profile, err := p.API.UpdateProfile(ctx, tok, form)
	if err != nil {
		p.Logger.Debug(ctx, "profile update failed", "error", err)
		p.show(gen, feedback.MsgProfileUpdateFailed)
		return fmt.Errorf("update profile: %w", err)
	}

	if !p.apply(gen, func() { p.profile = profile }) {
		return ErrPageInactive
	}
	return nil
}
