package metrics

import (
	"reflect"
	"testing"

	"rewardstracker/internal/models"
)

func adaProfile() models.Profile {
	return models.Profile{
		FullName:      "Ada Lovelace",
		DateOfBirth:   "1990-01-01",
		City:          "London",
		MonthlyIncome: "5000",
		PrimaryBank:   "Chase",
		Expenses: map[models.Category]string{
			models.CategoryTravel:       "200",
			models.CategoryUtilities:    "100",
			models.CategoryGroceries:    "300",
			models.CategoryShopping:     "0",
			models.CategoryDining:       "150",
			models.CategoryFoodDelivery: "50",
		},
	}
}

func TestCompute(t *testing.T) {
	m := Compute(adaProfile())

	if m.TotalExpenses != 800 {
		t.Errorf("expected total 800, got %v", m.TotalExpenses)
	}
	if m.SavingsRate != 84.0 {
		t.Errorf("expected savings rate 84.0, got %v", m.SavingsRate)
	}
	if got := m.PerCategoryPercentage[models.CategoryTravel]; got != 25.0 {
		t.Errorf("expected travel 25.0%%, got %v", got)
	}
	if got := m.PerCategoryPercentage[models.CategoryGroceries]; got != 37.5 {
		t.Errorf("expected groceries 37.5%%, got %v", got)
	}
	if _, ok := m.PerCategoryPercentage[models.CategoryShopping]; ok {
		t.Error("zero-amount category should have no percentage")
	}
	if len(m.PerCategoryPercentage) != 5 {
		t.Errorf("expected 5 percentages, got %d", len(m.PerCategoryPercentage))
	}
}

func TestCompute_Idempotent(t *testing.T) {
	p := adaProfile()

	first := Compute(p)
	second := Compute(p)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical metrics, got %+v and %+v", first, second)
	}
}

func TestCompute_ZeroIncome(t *testing.T) {
	p := adaProfile()
	p.MonthlyIncome = "0"

	m := Compute(p)

	if m.SavingsRate != 0 {
		t.Errorf("expected savings rate 0 for zero income, got %v", m.SavingsRate)
	}
	if m.TotalExpenses != 800 {
		t.Errorf("expected total 800, got %v", m.TotalExpenses)
	}
}

func TestCompute_MissingIncome(t *testing.T) {
	m := Compute(models.Profile{Expenses: map[models.Category]string{models.CategoryDining: "10"}})

	if m.SavingsRate != 0 {
		t.Errorf("expected savings rate 0 without income, got %v", m.SavingsRate)
	}
}

func TestCompute_ExponentNotationCountsAsZero(t *testing.T) {
	m := Compute(models.Profile{
		MonthlyIncome: "1e5000000",
		Expenses: map[models.Category]string{
			models.CategoryTravel: "1e-5000000",
			models.CategoryDining: "50",
		},
	})

	if m.SavingsRate != 0 {
		t.Errorf("expected savings rate 0 for unparsable income, got %v", m.SavingsRate)
	}
	if m.TotalExpenses != 50 {
		t.Errorf("expected total 50, got %v", m.TotalExpenses)
	}
	if _, ok := m.PerCategoryPercentage[models.CategoryTravel]; ok {
		t.Errorf("travel must have no share, got %v", m.PerCategoryPercentage)
	}
	if m.PerCategoryPercentage[models.CategoryDining] != 100 {
		t.Errorf("expected dining at 100%%, got %v", m.PerCategoryPercentage[models.CategoryDining])
	}
}

func TestCompute_NoExpenses(t *testing.T) {
	m := Compute(models.Profile{MonthlyIncome: "3000"})

	if m.TotalExpenses != 0 {
		t.Errorf("expected total 0, got %v", m.TotalExpenses)
	}
	if len(m.PerCategoryPercentage) != 0 {
		t.Errorf("expected no percentages, got %v", m.PerCategoryPercentage)
	}
	if m.SavingsRate != 100 {
		t.Errorf("expected savings rate 100, got %v", m.SavingsRate)
	}
}

func TestCompute_SkipsUnparsableEntries(t *testing.T) {
	m := Compute(models.Profile{
		MonthlyIncome: "1000",
		Expenses: map[models.Category]string{
			models.CategoryTravel:    "abc",
			models.CategoryDining:    "",
			models.CategoryGroceries: "-40",
			models.CategoryShopping:  "250",
		},
	})

	if m.TotalExpenses != 250 {
		t.Errorf("expected total 250, got %v", m.TotalExpenses)
	}
	if m.PerCategoryPercentage[models.CategoryShopping] != 100 {
		t.Errorf("expected shopping at 100%%, got %v", m.PerCategoryPercentage[models.CategoryShopping])
	}
	if m.SavingsRate != 75 {
		t.Errorf("expected savings rate 75, got %v", m.SavingsRate)
	}
}

func TestCompute_PercentagesNeverExceed100(t *testing.T) {
	m := Compute(models.Profile{
		MonthlyIncome: "100",
		Expenses: map[models.Category]string{
			models.CategoryTravel:    "1",
			models.CategoryUtilities: "1",
			models.CategoryGroceries: "1",
		},
	})

	var sum float64
	for _, pct := range m.PerCategoryPercentage {
		sum += pct
	}
	if sum > 100 {
		t.Errorf("percentages sum to %v, expected at most 100", sum)
	}
	if got := m.PerCategoryPercentage[models.CategoryTravel]; got != 33.3 {
		t.Errorf("expected 33.3, got %v", got)
	}
}

func TestCompute_OverspendingIsNegative(t *testing.T) {
	m := Compute(models.Profile{
		MonthlyIncome: "300",
		Expenses:      map[models.Category]string{models.CategoryTravel: "400"},
	})

	if m.SavingsRate != -33.3 {
		t.Errorf("expected savings rate -33.3, got %v", m.SavingsRate)
	}
}

func TestBreakdown(t *testing.T) {
	shares := Breakdown(adaProfile())

	if len(shares) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(shares))
	}
	if shares[0].Category != models.CategoryTravel || shares[0].Percentage != 25 || shares[0].Amount != 200 {
		t.Errorf("unexpected first row: %+v", shares[0])
	}
	last := shares[len(shares)-1]
	if last.Category != models.CategoryFoodDelivery || last.Label != "Food Delivery" {
		t.Errorf("unexpected last row: %+v", last)
	}
}

func TestBreakdown_Empty(t *testing.T) {
	if shares := Breakdown(models.Profile{MonthlyIncome: "10"}); shares != nil {
		t.Errorf("expected nil breakdown, got %+v", shares)
	}
}

func TestLabel(t *testing.T) {
	tests := map[models.Category]string{
		models.CategoryTravel:       "Travel",
		models.CategoryFoodDelivery: "Food Delivery",
		models.CategoryUtilities:    "Utilities",
	}
	for c, want := range tests {
		if got := Label(c); got != want {
			t.Errorf("Label(%q) = %q, want %q", c, got, want)
		}
	}
}
