package models

import (
	"encoding/json"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      LoginForm
		badFields int
	}{
		{name: "ok with email", form: LoginForm{UsernameOrEmail: "alice@example.org", Password: "pw"}},
		{name: "ok with username", form: LoginForm{UsernameOrEmail: "alice", Password: "pw"}},
		{name: "empty", form: LoginForm{}, badFields: 2},
		{name: "no password", form: LoginForm{UsernameOrEmail: "alice"}, badFields: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.badFields == 0 {
				require.NoError(t, err)
				return
			}
			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Len(t, verrs, tt.badFields)
		})
	}
}

func TestRegisterForm_Validate(t *testing.T) {
	require.NoError(t, RegisterForm{Username: "alice", Email: "alice@example.org", Password: "pw"}.Validate())

	err := RegisterForm{Username: "alice", Email: "not-an-email", Password: "pw"}.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)

	require.Error(t, RegisterForm{}.Validate())
}

func TestTargetsForm_Validate(t *testing.T) {
	require.NoError(t, TargetsForm{}.Validate())
	require.NoError(t, TargetsForm{MonthlyIncome: 5000, MonthlySavingsTarget: 1000, MonthlyExpenseTarget: 3000}.Validate())

	err := TargetsForm{MonthlyIncome: -1, MonthlyExpenseTarget: -2}.Validate()
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestTargetsFrom(t *testing.T) {
	assert.Equal(t, TargetsForm{}, TargetsFrom(nil))
	assert.Equal(t,
		TargetsForm{MonthlyIncome: 1, MonthlySavingsTarget: 2, MonthlyExpenseTarget: 3},
		TargetsFrom(&Profile{MonthlyIncome: 1, MonthlySavingsTarget: 2, MonthlyExpenseTarget: 3, Username: "x"}),
	)
}

func TestLoginForm_WireNames(t *testing.T) {
	b, err := json.Marshal(LoginForm{UsernameOrEmail: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"usernameOrEmail":"alice","password":"pw"}`, string(b))
}

func TestErrorBody_Text(t *testing.T) {
	var nilBody *ErrorBody
	assert.Equal(t, "", nilBody.Text())
	assert.Equal(t, "m", (&ErrorBody{Message: "m", Error: "e"}).Text())
	assert.Equal(t, "e", (&ErrorBody{Error: "e"}).Text())
}
