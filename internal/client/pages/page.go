package pages

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/feedback"
)

// Route identifies one page.
type Route string

const (
	RouteLogin     Route = "/"
	RouteRegister  Route = "/register"
	RouteDashboard Route = "/dashboard"
)

// Navigator switches the active route.
type Navigator interface {
	Navigate(route Route)
}

// Notifier shows a single blocking message to the user.
type Notifier interface {
	Notify(message string)
}

var (
	// ErrSubmissionInFlight is returned by a submit while another one of the
	// same page is still running.
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrPageInactive is returned when a request finished after the page was
	// left; its result was discarded.
	ErrPageInactive = errors.New("page is no longer active")
)

// lifecycle tracks whether a page is mounted. Every activation gets a new
// generation; results tagged with an older generation are stale.
type lifecycle struct {
	mu     sync.Mutex
	active bool
	gen    uint64
}

func (l *lifecycle) activate() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = true
	l.gen++
	return l.gen
}

// Deactivate marks the page as left. Pending completions become no-ops.
func (l *lifecycle) Deactivate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.active = false
}

// Active reports whether the page is mounted.
func (l *lifecycle) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

func (l *lifecycle) generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen
}

// apply runs fn under the page lock if gen is still the live activation.
// fn may be nil when only the check is needed.
func (l *lifecycle) apply(gen uint64, fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.active || l.gen != gen {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}

// inFlight is the per-page "request outstanding" flag.
type inFlight struct {
	busy atomic.Bool
}

func (f *inFlight) begin() bool {
	return f.busy.CompareAndSwap(false, true)
}

func (f *inFlight) end() {
	f.busy.Store(false)
}

// Submitting reports whether a submission is outstanding.
func (f *inFlight) Submitting() bool {
	return f.busy.Load()
}

// loginFailureMessage picks the message for a failed login call. HTTP errors
// go through the classifier; anything else means the exchange did not
// complete.
func loginFailureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return feedback.ClassifyLogin(apiErr.Status, apiErr.Body)
	}
	return feedback.MsgNetworkError
}
