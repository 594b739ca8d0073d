package validator

import (
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/models"
)

// Form field names. Expense fields are ExpensePrefix followed by the category.
const (
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldPhone         = "phone"
	FieldOTP           = "otp"
	FieldFullName      = "fullName"
	FieldDateOfBirth   = "dateOfBirth"
	FieldCity          = "city"
	FieldMonthlyIncome = "monthlyIncome"
	FieldPrimaryBank   = "primaryBank"

	ExpensePrefix = "expenses."
)

const (
	MinPasswordLength = 6
	PhoneDigits       = 10
	MaxOTPLength      = 6
	MinFullNameLength = 2
	MinAge            = 18

	// DateLayout is the accepted date-of-birth format.
	DateLayout = "2006-01-02"
)

// Banks is the fixed set of primary banks a profile may name.
var Banks = []string{
	"Chase",
	"Bank of America",
	"Wells Fargo",
	"Citibank",
	"Capital One",
	"American Express",
	"Discover",
	"Other",
}

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRegex = regexp.MustCompile(`\D`)
	amountRegex   = regexp.MustCompile(`^[+-]?(\d{1,15}(\.\d{0,10})?|\.\d{1,10})$`)
)

// ExpenseField returns the form field name of an expense category.
func ExpenseField(c models.Category) string {
	return ExpensePrefix + string(c)
}

// Rules evaluates field rules against a clock. The zero value is not usable;
// construct with NewRules.
type Rules struct {
	Now func() time.Time
}

// NewRules returns Rules bound to the wall clock.
func NewRules() *Rules {
	return &Rules{Now: time.Now}
}

var defaultRules = NewRules()

// Validate checks one field with the wall clock. It returns "" when the value
// is valid and a human-readable message otherwise.
func Validate(field, value string) string {
	return defaultRules.Validate(field, value)
}

// Validate checks one raw form value. It returns "" when the value is valid.
func (r *Rules) Validate(field, value string) string {
	switch field {
	case FieldEmail:
		return ValidateEmail(value)
	case FieldPassword:
		return ValidatePassword(value)
	case FieldPhone:
		return ValidatePhone(value)
	case FieldOTP:
		return ValidateOTP(value)
	case FieldFullName:
		return ValidateFullName(value)
	case FieldDateOfBirth:
		return r.ValidateDateOfBirth(value)
	case FieldCity:
		return ValidateCity(value)
	case FieldMonthlyIncome:
		return ValidateMonthlyIncome(value)
	case FieldPrimaryBank:
		return ValidatePrimaryBank(value)
	}

	if category, ok := strings.CutPrefix(field, ExpensePrefix); ok {
		if !models.Category(category).IsValid() {
			return "Unknown expense category"
		}
		return ValidateExpenseAmount(value)
	}
	return "Unknown field"
}

// ValidateEmail requires a local@domain.tld shape.
func ValidateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return "Please enter a valid email"
	}
	return ""
}

// ValidatePassword requires at least MinPasswordLength characters.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return "Password must be at least 6 characters"
	}
	return ""
}

// PhoneDigitsOnly strips every non-digit character.
func PhoneDigitsOnly(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// ValidatePhone requires exactly PhoneDigits digits once formatting is removed.
func ValidatePhone(phone string) string {
	if phone == "" {
		return "Phone number is required"
	}
	if len(PhoneDigitsOnly(phone)) != PhoneDigits {
		return "Please enter a valid 10-digit phone number"
	}
	return ""
}

// ValidateOTP accepts any non-empty code of up to MaxOTPLength characters.
// The code is not verified against anything.
func ValidateOTP(code string) string {
	if code == "" {
		return "OTP is required"
	}
	if utf8.RuneCountInString(code) > MaxOTPLength {
		return "OTP must be at most 6 characters"
	}
	return ""
}

// ValidateFullName requires a trimmed name of at least MinFullNameLength characters.
func ValidateFullName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Full name is required"
	}
	if utf8.RuneCountInString(trimmed) < MinFullNameLength {
		return "Full name must be at least 2 characters"
	}
	return ""
}

// ValidateDateOfBirth requires a DateLayout date whose year is at least MinAge
// years before the current year. Age is year subtraction only.
func (r *Rules) ValidateDateOfBirth(value string) string {
	if value == "" {
		return "Date of birth is required"
	}
	dob, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return "Please enter a valid date"
	}
	if r.Now().Year()-dob.Year() < MinAge {
		return "You must be at least 18 years old"
	}
	return ""
}

// ValidateCity requires a non-blank city.
func ValidateCity(city string) string {
	if strings.TrimSpace(city) == "" {
		return "City is required"
	}
	return ""
}

// ValidateMonthlyIncome requires a number greater than zero.
func ValidateMonthlyIncome(income string) string {
	if income == "" {
		return "Monthly income is required"
	}
	amount, ok := ParseAmount(income)
	if !ok || !amount.IsPositive() {
		return "Please enter a valid income amount"
	}
	return ""
}

// ValidatePrimaryBank requires one of Banks.
func ValidatePrimaryBank(bank string) string {
	if bank == "" {
		return "Please select your primary bank"
	}
	if !IsKnownBank(bank) {
		return "Please select a valid bank"
	}
	return ""
}

// IsKnownBank reports whether bank is one of Banks.
func IsKnownBank(bank string) bool {
	for _, b := range Banks {
		if b == bank {
			return true
		}
	}
	return false
}

// ValidateExpenseAmount accepts an empty value or a number of at least zero.
func ValidateExpenseAmount(amount string) string {
	if amount == "" {
		return ""
	}
	parsed, ok := ParseAmount(amount)
	if !ok || parsed.IsNegative() {
		return "Please enter a valid amount"
	}
	return ""
}

// ParseAmount parses a user-entered number in plain decimal notation with at
// most 15 integer and 10 fractional digits. Surrounding whitespace is ignored;
// anything else, exponents included, reports false.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(raw)
	if !amountRegex.MatchString(trimmed) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ValidateCredentials checks the field set of the given mode and returns every
// failure, in form order.
func (r *Rules) ValidateCredentials(creds models.Credentials) []apperrors.FieldError {
	var fields []apperrors.FieldError
	add := func(field, value string) {
		if msg := r.Validate(field, value); msg != "" {
			fields = append(fields, apperrors.FieldError{Field: field, Message: msg})
		}
	}

	switch creds.Mode {
	case models.ModeLogin:
		add(FieldEmail, creds.EmailOrPhone)
		add(FieldPassword, creds.Secret)
	case models.ModeSignup:
		add(FieldPhone, creds.EmailOrPhone)
		add(FieldOTP, creds.Secret)
	default:
		fields = append(fields, apperrors.FieldError{Field: "mode", Message: "Please choose log in or create account"})
	}
	return fields
}

// ValidateProfile checks every profile field and every expense category and
// returns all failures, in form order.
func (r *Rules) ValidateProfile(p models.Profile) []apperrors.FieldError {
	var fields []apperrors.FieldError
	add := func(field, value string) {
		if msg := r.Validate(field, value); msg != "" {
			fields = append(fields, apperrors.FieldError{Field: field, Message: msg})
		}
	}

	add(FieldFullName, p.FullName)
	add(FieldDateOfBirth, p.DateOfBirth)
	add(FieldCity, p.City)
	add(FieldMonthlyIncome, p.MonthlyIncome)
	add(FieldPrimaryBank, p.PrimaryBank)

	for _, c := range models.Categories {
		add(ExpenseField(c), p.Expense(c))
	}

	var unknown []string
	for c := range p.Expenses {
		if !c.IsValid() {
			unknown = append(unknown, string(c))
		}
	}
	sort.Strings(unknown)
	for _, c := range unknown {
		add(ExpensePrefix+c, p.Expenses[models.Category(c)])
	}
	return fields
}
