package models

// Category is a monthly expense category. The set is closed.
type Category string

const (
	CategoryTravel       Category = "travel"
	CategoryUtilities    Category = "utilities"
	CategoryGroceries    Category = "groceries"
	CategoryShopping     Category = "shopping"
	CategoryDining       Category = "dining"
	CategoryFoodDelivery Category = "foodDelivery"
)

// Categories lists every expense category in display order.
var Categories = []Category{
	CategoryTravel,
	CategoryUtilities,
	CategoryGroceries,
	CategoryShopping,
	CategoryDining,
	CategoryFoodDelivery,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Profile is captured by the second onboarding step. Numeric fields are kept
// as the raw strings the user typed; they are validated before the profile is
// stored and parsed again when metrics are computed.
type Profile struct {
	FullName      string              `json:"fullName"`
	DateOfBirth   string              `json:"dateOfBirth"`
	City          string              `json:"city"`
	MonthlyIncome string              `json:"monthlyIncome"`
	PrimaryBank   string              `json:"primaryBank"`
	Expenses      map[Category]string `json:"expenses"`
}

// Expense returns the raw amount for c, or "" when absent.
func (p Profile) Expense(c Category) string {
	if p.Expenses == nil {
		return ""
	}
	return p.Expenses[c]
}
