package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/expensetracker/internal/client/feedback"
	"github.com/dmitrijs2005/expensetracker/internal/client/models"
)

// Login is the sign-in page, the entry route of the client.
type Login struct {
	base
}

func NewLogin(d Deps) *Login {
	return &Login{base: base{Deps: d.withDefaults()}}
}

// Activate mounts the page.
func (p *Login) Activate() {
	p.activate()
}

// Submit signs in with form. On success the returned token is stored and
// the dashboard is entered. On failure exactly one message is shown: the
// classified API error, a network error, or the validation problem (in which
// case no request is made). The page must be active.
func (p *Login) Submit(ctx context.Context, form models.LoginForm) error {
	if !p.begin() {
		return ErrSubmissionInFlight
	}
	defer p.end()

	gen := p.generation()

	if err := form.Validate(); err != nil {
		p.show(gen, err.Error())
		return err
	}

	resp, err := p.API.Login(ctx, form)
	if err != nil {
		p.Logger.Debug(ctx, "login failed", "error", err)
		p.show(gen, loginFailureMessage(err))
		return fmt.Errorf("login: %w", err)
	}

	p.Logger.Info(ctx, "signed in", "user", form.UsernameOrEmail)
	return p.startSession(ctx, gen, resp.Token, feedback.MsgLoginFailed)
}
