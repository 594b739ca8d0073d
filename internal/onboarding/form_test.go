package onboarding

import (
	"testing"

	"rewardstracker/internal/models"
	"rewardstracker/internal/validator"
)

func TestForm_ChangeUpdatesOnlyThatField(t *testing.T) {
	empty := NewCredentialsForm(fixedRules(), models.ModeLogin).ValidateAll()
	if empty.Error(validator.FieldEmail) != "Email is required" || empty.Error(validator.FieldPassword) != "Password is required" {
		t.Fatalf("unexpected initial errors: %+v", empty.Errors())
	}

	changed := empty.Change(validator.FieldEmail, "ada@example.com")

	if changed.Error(validator.FieldEmail) != "" {
		t.Errorf("expected email error cleared, got %q", changed.Error(validator.FieldEmail))
	}
	if changed.Error(validator.FieldPassword) != "Password is required" {
		t.Errorf("password error must be untouched, got %q", changed.Error(validator.FieldPassword))
	}
	if empty.Value(validator.FieldEmail) != "" || empty.Error(validator.FieldEmail) == "" {
		t.Error("Change must not modify the receiver")
	}
}

func TestForm_ChangeSetsError(t *testing.T) {
	f := NewCredentialsForm(fixedRules(), models.ModeSignup).Change(validator.FieldPhone, "12345")

	if f.Error(validator.FieldPhone) != "Please enter a valid 10-digit phone number" {
		t.Errorf("unexpected phone error %q", f.Error(validator.FieldPhone))
	}
	if f.Error(validator.FieldOTP) != "" {
		t.Error("untouched field must have no error before ValidateAll")
	}
	if f.Valid() {
		t.Error("expected form to be invalid")
	}
}

func TestForm_ErrorsInDisplayOrder(t *testing.T) {
	f := NewProfileForm(fixedRules()).
		Change(validator.ExpenseField(models.CategoryDining), "-3").
		Change(validator.FieldFullName, "J").
		ValidateAll()

	errs := f.Errors()
	if len(errs) < 2 || errs[0].Field != validator.FieldFullName {
		t.Fatalf("expected fullName first, got %+v", errs)
	}
	if last := errs[len(errs)-1]; last.Field != "expenses.dining" {
		t.Errorf("expected dining last, got %+v", last)
	}
}

func TestForm_Profile(t *testing.T) {
	f := NewProfileForm(fixedRules()).
		Change(validator.FieldFullName, "Ada Lovelace").
		Change(validator.FieldDateOfBirth, "1990-01-01").
		Change(validator.FieldCity, "London").
		Change(validator.FieldMonthlyIncome, "5000").
		Change(validator.FieldPrimaryBank, "Chase").
		Change(validator.ExpenseField(models.CategoryTravel), "200").
		Change(validator.ExpenseField(models.CategoryDining), " ").
		ValidateAll()

	if !f.Valid() {
		t.Fatalf("expected valid form, got %+v", f.Errors())
	}

	p := f.Profile()
	if p.FullName != "Ada Lovelace" || p.PrimaryBank != "Chase" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if len(p.Expenses) != 1 || p.Expense(models.CategoryTravel) != "200" {
		t.Errorf("expected only travel expense, got %v", p.Expenses)
	}
}

func TestForm_Credentials(t *testing.T) {
	f := NewCredentialsForm(fixedRules(), models.ModeSignup).
		Change(validator.FieldPhone, "5551234567").
		Change(validator.FieldOTP, "0000")

	creds := f.Credentials(models.ModeSignup)
	if creds.EmailOrPhone != "5551234567" || creds.Secret != "0000" || creds.Mode != models.ModeSignup {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}

func TestForm_UnknownFieldIsTracked(t *testing.T) {
	f := NewForm(fixedRules()).Change("nickname", "ada")

	if f.Error("nickname") != "Unknown field" {
		t.Errorf("expected unknown field error, got %q", f.Error("nickname"))
	}
	if len(f.Errors()) != 1 {
		t.Errorf("expected one error, got %+v", f.Errors())
	}
}

func TestForm_ZeroValueIsUsable(t *testing.T) {
	var f Form

	changed := f.Change(validator.FieldDateOfBirth, "not-a-date").Change(validator.FieldCity, "Paris")

	if changed.Error(validator.FieldDateOfBirth) == "" {
		t.Error("expected date of birth error")
	}
	if changed.Value(validator.FieldCity) != "Paris" || changed.Error(validator.FieldCity) != "" {
		t.Errorf("unexpected city state %q %q", changed.Value(validator.FieldCity), changed.Error(validator.FieldCity))
	}
	if got := f.ValidateAll(); !got.Valid() {
		t.Errorf("empty form has no fields to fail, got %+v", got.Errors())
	}
	if f.Value(validator.FieldCity) != "" {
		t.Error("Change must not modify the zero receiver")
	}
}

func TestBuildDashboard_LowSavings(t *testing.T) {
	d := BuildDashboard(models.Profile{
		FullName:      "  Grace   Hopper ",
		MonthlyIncome: "1000",
		Expenses:      map[models.Category]string{models.CategoryShopping: "900"},
	})

	if d.FirstName != "Grace" {
		t.Errorf("expected Grace, got %q", d.FirstName)
	}
	if d.HealthySavings {
		t.Error("10% savings must not be flagged healthy")
	}
}
