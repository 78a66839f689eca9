package models

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// LoginForm is the state of the sign-in page and the body of
// POST /api/auth/login.
type LoginForm struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// Validate checks that both fields are filled in.
func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.UsernameOrEmail, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

// RegisterForm is the state of the sign-up page and the body of
// POST /api/auth/register.
type RegisterForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields and the email format.
func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

// TargetsForm carries new monthly targets for PUT /api/profile.
type TargetsForm struct {
	MonthlyIncome        float64 `json:"monthlyIncome"`
	MonthlySavingsTarget float64 `json:"monthlySavingsTarget"`
	MonthlyExpenseTarget float64 `json:"monthlyExpenseTarget"`
}

// Validate rejects negative amounts. Zero is a valid target.
func (f TargetsForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.MonthlyIncome, validation.Min(0.0)),
		validation.Field(&f.MonthlySavingsTarget, validation.Min(0.0)),
		validation.Field(&f.MonthlyExpenseTarget, validation.Min(0.0)),
	)
}

// TargetsFrom prefills a TargetsForm with the values of p; a nil profile
// gives zeros.
func TargetsFrom(p *Profile) TargetsForm {
	if p == nil {
		return TargetsForm{}
	}
	return TargetsForm{
		MonthlyIncome:        p.MonthlyIncome,
		MonthlySavingsTarget: p.MonthlySavingsTarget,
		MonthlyExpenseTarget: p.MonthlyExpenseTarget,
	}
}
