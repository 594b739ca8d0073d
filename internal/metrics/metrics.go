// Package metrics computes the dashboard aggregates of a profile: total monthly
// spend, each category's share of it, and the savings rate. Nothing here is
// stored; callers recompute on every render.
package metrics

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"rewardstracker/internal/models"
	"rewardstracker/internal/validator"
)

var hundred = decimal.NewFromInt(100)

// DerivedMetrics are the aggregates shown on the dashboard.
type DerivedMetrics struct {
	TotalExpenses         float64                     `json:"totalExpenses"`
	PerCategoryPercentage map[models.Category]float64 `json:"perCategoryPercentage"`
	SavingsRate           float64                     `json:"savingsRate"`
}

// CategoryShare is one row of the spending breakdown.
type CategoryShare struct {
	Category   models.Category `json:"category"`
	Label      string          `json:"label"`
	Amount     float64         `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// Compute derives the dashboard metrics from p.
//
// Expense entries that are blank, malformed or negative count as zero.
// Percentages exist only for categories with a nonzero amount and are
// truncated to one decimal, so they never sum past 100. The savings rate is
// rounded to one decimal and is 0 when income is missing or not positive.
func Compute(p models.Profile) DerivedMetrics {
	amounts, total := categoryAmounts(p)

	percentages := make(map[models.Category]float64, len(amounts))
	if total.IsPositive() {
		for c, amount := range amounts {
			percentages[c] = percentage(amount, total).InexactFloat64()
		}
	}

	return DerivedMetrics{
		TotalExpenses:         total.InexactFloat64(),
		PerCategoryPercentage: percentages,
		SavingsRate:           savingsRate(p.MonthlyIncome, total).InexactFloat64(),
	}
}

// Breakdown returns the nonzero categories of p in display order with their
// amount and share of the total.
func Breakdown(p models.Profile) []CategoryShare {
	amounts, total := categoryAmounts(p)
	if !total.IsPositive() {
		return nil
	}

	shares := make([]CategoryShare, 0, len(amounts))
	for _, c := range models.Categories {
		amount, ok := amounts[c]
		if !ok {
			continue
		}
		shares = append(shares, CategoryShare{
			Category:   c,
			Label:      Label(c),
			Amount:     amount.InexactFloat64(),
			Percentage: percentage(amount, total).InexactFloat64(),
		})
	}
	return shares
}

// Label turns a category key into a display label: "foodDelivery" becomes
// "Food Delivery".
func Label(c models.Category) string {
	var b strings.Builder
	for i, r := range string(c) {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// categoryAmounts returns the positive amount of every known category and
// their sum.
func categoryAmounts(p models.Profile) (map[models.Category]decimal.Decimal, decimal.Decimal) {
	amounts := make(map[models.Category]decimal.Decimal, len(models.Categories))
	total := decimal.Zero
	for _, c := range models.Categories {
		amount := parseNumberOrZero(p.Expense(c))
		if !amount.IsPositive() {
			continue
		}
		amounts[c] = amount
		total = total.Add(amount)
	}
	return amounts, total
}

func percentage(amount, total decimal.Decimal) decimal.Decimal {
	return amount.Mul(hundred).Div(total).Truncate(1)
}

func savingsRate(rawIncome string, total decimal.Decimal) decimal.Decimal {
	income := parseNumberOrZero(rawIncome)
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(total).Mul(hundred).Div(income).Round(1)
}

func parseNumberOrZero(raw string) decimal.Decimal {
	d, ok := validator.ParseAmount(raw)
	if !ok {
		return decimal.Zero
	}
	return d
}
