package onboarding

import (
	"maps"
	"strings"

	apperrors "rewardstracker/internal/errors"
	"rewardstracker/internal/models"
	"rewardstracker/internal/validator"
)

// Form is an immutable set of raw field values and their errors. Every
// update returns a new Form and leaves the receiver untouched. The zero Form
// is an empty form using the default rules.
type Form struct {
	rules  *validator.Rules
	fields []string
	values map[string]string
	errors map[string]string
}

// NewForm returns an empty form over the given fields, in display order.
func NewForm(rules *validator.Rules, fields ...string) Form {
	if rules == nil {
		rules = validator.NewRules()
	}
	return Form{
		rules:  rules,
		fields: append([]string(nil), fields...),
		values: map[string]string{},
		errors: map[string]string{},
	}
}

// NewCredentialsForm returns the form of the credentials step for mode.
func NewCredentialsForm(rules *validator.Rules, mode models.CredentialMode) Form {
	if mode == models.ModeSignup {
		return NewForm(rules, validator.FieldPhone, validator.FieldOTP)
	}
	return NewForm(rules, validator.FieldEmail, validator.FieldPassword)
}

// NewProfileForm returns the form of the profile step.
func NewProfileForm(rules *validator.Rules) Form {
	fields := []string{
		validator.FieldFullName,
		validator.FieldDateOfBirth,
		validator.FieldCity,
		validator.FieldMonthlyIncome,
		validator.FieldPrimaryBank,
	}
	for _, c := range models.Categories {
		fields = append(fields, validator.ExpenseField(c))
	}
	return NewForm(rules, fields...)
}

// Change sets one field and revalidates only that field.
func (f Form) Change(field, value string) Form {
	next := f.clone()
	if !f.has(field) {
		next.fields = append(next.fields, field)
	}
	next.values[field] = value
	if msg := next.rules.Validate(field, value); msg != "" {
		next.errors[field] = msg
	} else {
		delete(next.errors, field)
	}
	return next
}

// ValidateAll recomputes the error of every field.
func (f Form) ValidateAll() Form {
	next := f.clone()
	next.errors = map[string]string{}
	for _, field := range next.fields {
		if msg := next.rules.Validate(field, next.values[field]); msg != "" {
			next.errors[field] = msg
		}
	}
	return next
}

// Value returns the raw value of field.
func (f Form) Value(field string) string { return f.values[field] }

// Error returns the current error of field, or "".
func (f Form) Error(field string) string { return f.errors[field] }

// Valid reports whether no field currently has an error.
func (f Form) Valid() bool { return len(f.errors) == 0 }

// Errors returns the current field errors in display order.
func (f Form) Errors() []apperrors.FieldError {
	var out []apperrors.FieldError
	for _, field := range f.fields {
		if msg, ok := f.errors[field]; ok {
			out = append(out, apperrors.FieldError{Field: field, Message: msg})
		}
	}
	return out
}

// Credentials builds the credentials of mode from the form values.
func (f Form) Credentials(mode models.CredentialMode) models.Credentials {
	if mode == models.ModeSignup {
		return models.Credentials{Mode: mode, EmailOrPhone: f.values[validator.FieldPhone], Secret: f.values[validator.FieldOTP]}
	}
	return models.Credentials{Mode: mode, EmailOrPhone: f.values[validator.FieldEmail], Secret: f.values[validator.FieldPassword]}
}

// Profile builds a profile from the form values. Blank expenses are omitted.
func (f Form) Profile() models.Profile {
	p := models.Profile{
		FullName:      f.values[validator.FieldFullName],
		DateOfBirth:   f.values[validator.FieldDateOfBirth],
		City:          f.values[validator.FieldCity],
		MonthlyIncome: f.values[validator.FieldMonthlyIncome],
		PrimaryBank:   f.values[validator.FieldPrimaryBank],
		Expenses:      map[models.Category]string{},
	}
	for field, value := range f.values {
		category, ok := strings.CutPrefix(field, validator.ExpensePrefix)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		p.Expenses[models.Category(category)] = value
	}
	return p
}

func (f Form) has(field string) bool {
	for _, known := range f.fields {
		if known == field {
			return true
		}
	}
	return false
}

func (f Form) clone() Form {
	next := Form{
		rules:  f.rules,
		fields: append([]string(nil), f.fields...),
		values: maps.Clone(f.values),
		errors: maps.Clone(f.errors),
	}
	if next.rules == nil {
		next.rules = validator.NewRules()
	}
	if next.values == nil {
		next.values = map[string]string{}
	}
	if next.errors == nil {
		next.errors = map[string]string{}
	}
	return next
}
