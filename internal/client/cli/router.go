package cli

import (
	"sync"

	"github.com/dmitrijs2005/expensetracker/internal/client/pages"
)

// router collects the navigations requested by pages. The REPL mounts them
// between commands, so a page never mounts another one from inside its own
// call.
type router struct {
	mu      sync.Mutex
	pending []pages.Route
}

func (r *router) Navigate(route pages.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, route)
}

// next pops the oldest pending route.
func (r *router) next() (pages.Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) == 0 {
		return "", false
	}
	route := r.pending[0]
	r.pending = r.pending[1:]
	return route, true
}

// printNotifier shows page messages on the REPL output.
type printNotifier struct{}

func (printNotifier) Notify(message string) {
	printlnFn(message)
}

func (r *router) hasPending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending) > 0
}
