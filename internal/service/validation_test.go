package service

import (
	"strings"
	"testing"
)

func validSignUpInput() SignUpInput {
	return SignUpInput{
		DisplayName: "alice",
		Password:    "Secr3t!@",
		Email:       "a@x.com",
		Phone:       "1234567890",
		NationalID:  "123456789012",
		AccountType: "Savings",
		Branch:      "Main",
	}
}

func fieldsOf(errs ValidationErrors) map[string]bool {
	fields := make(map[string]bool, len(errs))
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	return fields
}

func TestValidateSignUpAcceptsValidInput(t *testing.T) {
	if errs := ValidateSignUp(validSignUpInput()); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestValidateSignUpNationalIDBoundaries(t *testing.T) {
	cases := []struct {
		id string
		ok bool
	}{
		{"12345678901", false},   // 11 digitos
		{"123456789012", true},   // exactamente 12
		{"1234567890123", false}, // 13 digitos
		{"12345678901a", false},
		{"", false},
	}
	for _, tc := range cases {
		input := validSignUpInput()
		input.NationalID = tc.id
		errs := ValidateSignUp(input)
		if tc.ok && len(errs) != 0 {
			t.Fatalf("national id %q: expected valid, got %v", tc.id, errs)
		}
		if !tc.ok && !fieldsOf(errs)["national_id"] {
			t.Fatalf("national id %q: expected a national_id violation, got %v", tc.id, errs)
		}
	}
}

func TestValidateSignUpListsEveryViolation(t *testing.T) {
	errs := ValidateSignUp(SignUpInput{
		DisplayName: strings.Repeat("x", 51),
		Password:    "short",
		Email:       "not-an-email",
		Phone:       "abc",
		NationalID:  "123",
		Gender:      strings.Repeat("y", 11),
		AccountType: "",
		Branch:      "",
	})

	fields := fieldsOf(errs)
	for _, want := range []string{"display_name", "password", "email", "phone", "national_id", "gender", "account_type", "branch"} {
		if !fields[want] {
			t.Fatalf("expected violation for %q, got %v", want, errs)
		}
	}
	if len(errs) != 8 {
		t.Fatalf("expected 8 violations, got %d: %v", len(errs), errs)
	}
}

func TestValidateSignUpFieldLimits(t *testing.T) {
	input := validSignUpInput()
	input.Email = strings.Repeat("a", 95) + "@x.com"
	if errs := ValidateSignUp(input); !fieldsOf(errs)["email"] {
		t.Fatalf("expected email length violation, got %v", errs)
	}

	input = validSignUpInput()
	input.Phone = "+91 123-456-789"
	if errs := ValidateSignUp(input); len(errs) != 0 {
		t.Fatalf("expected formatted phone to pass, got %v", errs)
	}

	input = validSignUpInput()
	input.Phone = "123456"
	if errs := ValidateSignUp(input); !fieldsOf(errs)["phone"] {
		t.Fatalf("expected short phone violation, got %v", errs)
	}

	// bcrypt no acepta más de 72 bytes; 72 pasa, 73 se rechaza.
	input = validSignUpInput()
	input.Password = strings.Repeat("p", 72)
	if errs := ValidateSignUp(input); len(errs) != 0 {
		t.Fatalf("expected 72-byte password to pass, got %v", errs)
	}

	input = validSignUpInput()
	input.Password = strings.Repeat("p", 73)
	if errs := ValidateSignUp(input); !fieldsOf(errs)["password"] {
		t.Fatalf("expected long password violation, got %v", errs)
	}

	input = validSignUpInput()
	input.Gender = "Female"
	if errs := ValidateSignUp(input); len(errs) != 0 {
		t.Fatalf("expected optional gender to pass, got %v", errs)
	}
}

func TestValidateSignUpRejectsEmailWithDisplayName(t *testing.T) {
	input := validSignUpInput()
	input.Email = "Alice <a@x.com>"
	if errs := ValidateSignUp(input); !fieldsOf(errs)["email"] {
		t.Fatalf("expected email format violation, got %v", errs)
	}
}

func TestValidateLogin(t *testing.T) {
	if errs := ValidateLogin(LoginInput{Identifier: "alice", Password: "Secr3t!@"}); len(errs) != 0 {
		t.Fatalf("expected no violations, got %v", errs)
	}

	errs := ValidateLogin(LoginInput{Identifier: "  ", Password: ""})
	fields := fieldsOf(errs)
	if !fields["identifier"] || !fields["password"] {
		t.Fatalf("expected identifier and password violations, got %v", errs)
	}
}

func TestValidationErrorsErrorString(t *testing.T) {
	errs := ValidationErrors{{Field: "email", Message: "email is required"}}
	if !strings.Contains(errs.Error(), "email is required") {
		t.Fatalf("unexpected error string: %s", errs.Error())
	}
}
