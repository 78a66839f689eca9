package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/pages"
)

var errNotOnDashboard = errors.New("dashboard is not open")

var amountPrinter = message.NewPrinter(language.English)

// formatAmount renders v with thousands separators and at most two
// fraction digits, e.g. "$12,345.5".
func formatAmount(v float64) string {
	return amountPrinter.Sprintf("$%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// Dashboard (re)enters the dashboard: the profile is fetched again and
// shown, or the login page opens when there is no session.
func (a *App) Dashboard(ctx context.Context) error {
	a.router.Navigate(pages.RouteDashboard)
	a.settle(ctx)
	return nil
}

// Targets prompts for new monthly targets, prefilled with the values shown
// on the dashboard, and saves them.
func (a *App) Targets(ctx context.Context) error {
	if a.route != pages.RouteDashboard {
		printlnFn("Open the dashboard first (sign in with 'login').")
		return errNotOnDashboard
	}

	current := models.TargetsFrom(a.dashboard.View().Profile)

	form, err := a.promptTargets(current)
	if err != nil {
		printlnFn("Invalid amount:", err)
		return err
	}

	err = a.dashboard.UpdateTargets(ctx, form)
	if err == nil {
		printlnFn("Targets saved.")
		renderDashboard(a.dashboard.View())
	}
	a.settle(ctx)
	return err
}

func (a *App) promptTargets(current models.TargetsForm) (models.TargetsForm, error) {
	var (
		form models.TargetsForm
		err  error
	)
	if form.MonthlyIncome, err = GetAmount(a.reader, "Monthly income", current.MonthlyIncome, os.Stdout); err != nil {
		return form, err
	}
	if form.MonthlySavingsTarget, err = GetAmount(a.reader, "Savings target", current.MonthlySavingsTarget, os.Stdout); err != nil {
		return form, err
	}
	if form.MonthlyExpenseTarget, err = GetAmount(a.reader, "Expense target", current.MonthlyExpenseTarget, os.Stdout); err != nil {
		return form, err
	}
	return form, nil
}

// renderDashboard prints the greeting and the three target cards. Values
// missing from the profile are shown as zero.
func renderDashboard(v pages.DashboardView) {
	if v.Loading {
		printlnFn("Loading...")
		return
	}

	t := models.TargetsFrom(v.Profile)

	printlnFn(fmt.Sprintf("Welcome %s!", v.Name))
	printlnFn(card("Monthly Income", t.MonthlyIncome, "Current target"))
	printlnFn(card("Savings Target", t.MonthlySavingsTarget, "Monthly goal"))
	printlnFn(card("Expense Target", t.MonthlyExpenseTarget, "Monthly limit"))
}

func card(title string, amount float64, caption string) string {
	return fmt.Sprintf("  %-16s %14s  %s", title, formatAmount(amount), caption)
}
