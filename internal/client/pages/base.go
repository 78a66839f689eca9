package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/session"
	"github.com/dmitrijs2005/expensetracker/internal/logging"
)

// Deps are the collaborators shared by all pages.
type Deps struct {
	API      client.Client
	Store    session.Store
	Nav      Navigator
	Notifier Notifier
	Logger   logging.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return d
}

// base bundles what every page has: lifecycle, in-flight flag, deps.
type base struct {
	lifecycle
	inFlight
	Deps
}

// show notifies the user unless the activation gen is stale.
func (b *base) show(gen uint64, msg string) {
	if b.apply(gen, nil) {
		b.Notifier.Notify(msg)
	}
}

// startSession stores a freshly issued token and enters the dashboard.
// failMsg is shown if the token cannot be saved.
func (b *base) startSession(ctx context.Context, gen uint64, tok string, failMsg string) error {
	if !b.apply(gen, nil) {
		return ErrPageInactive
	}
	if err := b.Store.Set(ctx, tok); err != nil {
		b.Logger.Error(ctx, "saving session failed", "error", err)
		b.show(gen, failMsg)
		return fmt.Errorf("save session: %w", err)
	}
	b.Nav.Navigate(RouteDashboard)
	return nil
}
