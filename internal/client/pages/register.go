package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/expensetracker/internal/client/feedback"
	"github.com/dmitrijs2005/expensetracker/internal/client/models"
)

// Register is the sign-up page.
//
// Unlike Login, every failure is reported with the same generic message:
// the API's status and body are not classified here.
type Register struct {
	base
}

func NewRegister(d Deps) *Register {
	return &Register{base: base{Deps: d.withDefaults()}}
}

// Activate mounts the page.
func (p *Register) Activate() {
	p.activate()
}

// Submit creates an account. On success the returned token is stored and
// the dashboard is entered; otherwise feedback.MsgRegistrationFailed is shown
// (or the validation problem, without a request). The page must be active.
func (p *Register) Submit(ctx context.Context, form models.RegisterForm) error {
	if !p.begin() {
		return ErrSubmissionInFlight
	}
	defer p.end()

	gen := p.generation()

	if err := form.Validate(); err != nil {
		p.show(gen, err.Error())
		return err
	}

	resp, err := p.API.Register(ctx, form)
	if err != nil {
		p.Logger.Debug(ctx, "registration failed", "error", err)
		p.show(gen, feedback.MsgRegistrationFailed)
		return fmt.Errorf("register: %w", err)
	}

	p.Logger.Info(ctx, "account created", "user", form.Username)
	return p.startSession(ctx, gen, resp.Token, feedback.MsgRegistrationFailed)
}
