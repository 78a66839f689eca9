// Package feedback turns failed API calls into the one message the user sees.
package feedback

import (
	"net/http"
	"regexp"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
)

// User-facing messages.
const (
	MsgAccountNotFound     = "User does not exist. Sign up to create an account."
	MsgInvalidCredentials  = "Invalid credentials. Please check your username and password."
	MsgLoginFailed         = "Login failed"
	MsgNetworkError        = "Login failed. Please check your network connection and try again."
	MsgRegistrationFailed  = "Registration failed"
	MsgProfileUpdateFailed = "Could not save your targets. Please try again."
)

var notFoundPattern = regexp.MustCompile(`(?i)not found|user not found|does not exist`)

// ClassifyLogin maps a failed login response to a message. body may be nil
// when the response had no JSON. It is total: every input yields exactly
// one message.
//
// A 404 status, or a body whose message (or error) mentions a missing
// account, wins over everything else; then 401; then the server's own
// message; then a generic text.
func ClassifyLogin(status int, body *models.ErrorBody) string {
	if status == http.StatusNotFound || notFoundPattern.MatchString(body.Text()) {
		return MsgAccountNotFound
	}
	if status == http.StatusUnauthorized {
		return MsgInvalidCredentials
	}
	if body != nil && body.Message != "" {
		return body.Message
	}
	return MsgLoginFailed
}
