package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/config"
	"github.com/dmitrijs2005/expensetracker/internal/client/pages"
	"github.com/dmitrijs2005/expensetracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/expensetracker/internal/client/session"
	"github.com/dmitrijs2005/expensetracker/internal/filex"
	"github.com/dmitrijs2005/expensetracker/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	router    *router
	route     pages.Route
	login     *pages.Login
	register  *pages.Register
	dashboard *pages.Dashboard

	reader *bufio.Reader
}

// NewApp opens the session database at c.SessionDBPath and connects the
// pages to the API at c.APIBaseURL.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.SessionDBPath); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.SessionDBPath, "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("api client: %w", err)
	}

	store := session.NewSQLiteStore(metadata.NewSQLiteRepository(db))

	a := newApp(api, store, logger, bufio.NewReader(os.Stdin))
	a.config = c
	a.db = db
	return a, nil
}

func newApp(api client.Client, store session.Store, logger logging.Logger, reader *bufio.Reader) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &router{}
	deps := pages.Deps{
		API:      api,
		Store:    store,
		Nav:      r,
		Notifier: printNotifier{},
		Logger:   logger,
	}
	return &App{
		logger:    logger,
		router:    r,
		login:     pages.NewLogin(deps),
		register:  pages.NewRegister(deps),
		dashboard: pages.NewDashboard(deps),
		reader:    reader,
	}
}

// Run enters the dashboard (which falls back to the login page when no
// session is saved) and then serves commands until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	printlnFn("Welcome to Expense Tracker CLI (type 'help' for commands)")

	a.router.Navigate(pages.RouteDashboard)
	a.settle(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

// Close releases the session database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) currentRoute() pages.Route {
	return a.route
}

func (a *App) getStatus() string {
	if a.route == pages.RouteDashboard {
		return fmt.Sprintf("(%s %s)", a.dashboard.View().Name, a.route)
	}
	return fmt.Sprintf("(%s)", a.route)
}

// goTo navigates to route unless it is already mounted.
func (a *App) goTo(ctx context.Context, route pages.Route) {
	if a.route == route {
		return
	}
	a.router.Navigate(route)
	a.settle(ctx)
}

// settle mounts every route requested since the last call, in order.
func (a *App) settle(ctx context.Context) {
	for {
		route, ok := a.router.next()
		if !ok {
			return
		}
		a.mount(ctx, route)
	}
}

func (a *App) mount(ctx context.Context, route pages.Route) {
	a.unmount()
	a.route = route
	a.logger.Debug(ctx, "route entered", "route", string(route))

	switch route {
	case pages.RouteLogin:
		a.login.Activate()
		printlnFn("Sign in with 'login', or create an account with 'register'.")

	case pages.RouteRegister:
		a.register.Activate()

	case pages.RouteDashboard:
		done := a.dashboard.Activate(ctx)
		select {
		case <-done:
		case <-ctx.Done():
			return
		}
		if a.router.hasPending() {
			// redirected
			return
		}
		renderDashboard(a.dashboard.View())

	default:
		a.logger.Warn(ctx, "unknown route", "route", string(route))
	}
}

func (a *App) unmount() {
	switch a.route {
	case pages.RouteLogin:
		a.login.Deactivate()
	case pages.RouteRegister:
		a.register.Deactivate()
	case pages.RouteDashboard:
		a.dashboard.Deactivate()
	}
}
