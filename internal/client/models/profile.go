package models

// Profile holds the user's configured monthly targets as returned by
// GET /api/profile. Username is only present when the API includes it.
type Profile struct {
	MonthlyIncome        float64 `json:"monthlyIncome"`
	MonthlySavingsTarget float64 `json:"monthlySavingsTarget"`
	MonthlyExpenseTarget float64 `json:"monthlyExpenseTarget"`
	Username             string  `json:"username,omitempty"`
}

// AuthResponse is the success body of the login and registration endpoints.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorBody is the optional JSON body of a failed API call. Servers use
// either field.
type ErrorBody struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns Message, falling back to Error.
func (b *ErrorBody) Text() string {
	if b == nil {
		return ""
	}
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
