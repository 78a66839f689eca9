// Package pages implements the three screens of the expense tracker client:
// sign-in, sign-up and the dashboard.
//
// A page does not draw anything. It owns its form/in-flight state, talks to
// the API through client.Client, keeps the token in a session.Store, and
// reports back through two small capabilities supplied by the caller:
// a Navigator that switches routes and a Notifier that shows one blocking
// message to the user.
//
// # Lifecycle
//
// The router activates a page when its route is entered and deactivates it
// when the route is left. Work that completes after deactivation, or after
// the page was activated again, is dropped: it neither mutates page state
// nor navigates nor notifies.
//
// Submissions follow Idle → Submitting → {Success (navigate), Failed
// (message), Idle}. The Submitting flag is cleared on every exit path, and a
// second submit while one is running is rejected with ErrSubmissionInFlight
// without issuing a request.
package pages
