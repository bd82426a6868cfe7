package service

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"
)

// FieldError describe una violación puntual de un campo de entrada.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors acumula todas las violaciones, no solo la primera.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, FieldError{Field: field, Message: message})
}

// ValidateSignUp aplica las reglas de forma de todos los campos de registro.
func ValidateSignUp(input SignUpInput) ValidationErrors {
	var errs ValidationErrors

	if input.DisplayName == "" {
		errs.add("display_name", "display name is required")
	} else if len(input.DisplayName) > 50 {
		errs.add("display_name", "display name cannot exceed 50 characters")
	}

	// El tope de 72 bytes es el límite duro de bcrypt; aceptar más
	// produciría un error interno al derivar el digest.
	if input.Password == "" {
		errs.add("password", "password is required")
	} else if len(input.Password) < 6 || len(input.Password) > 72 {
		errs.add("password", "password must be between 6 and 72 characters")
	}

	switch {
	case input.Email == "":
		errs.add("email", "email is required")
	case len(input.Email) > 100:
		errs.add("email", "email cannot exceed 100 characters")
	case !isValidEmail(input.Email):
		errs.add("email", "invalid email format")
	}

	switch {
	case input.Phone == "":
		errs.add("phone", "phone is required")
	case len(input.Phone) > 15:
		errs.add("phone", "phone cannot exceed 15 characters")
	case !isValidPhone(input.Phone):
		errs.add("phone", "invalid phone format")
	}

	if input.NationalID == "" {
		errs.add("national_id", "national id is required")
	} else if !isValidNationalID(input.NationalID) {
		errs.add("national_id", "national id must be exactly 12 digits")
	}

	if len(input.Gender) > 10 {
		errs.add("gender", "gender cannot exceed 10 characters")
	}

	if input.AccountType == "" {
		errs.add("account_type", "account type is required")
	} else if len(input.AccountType) > 20 {
		errs.add("account_type", "account type cannot exceed 20 characters")
	}

	if input.Branch == "" {
		errs.add("branch", "branch is required")
	} else if len(input.Branch) > 50 {
		errs.add("branch", "branch cannot exceed 50 characters")
	}

	return errs
}

// ValidateLogin exige presencia de identificador y contraseña.
func ValidateLogin(input LoginInput) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(input.Identifier) == "" {
		errs.add("identifier", "identifier is required")
	}
	if strings.TrimSpace(input.Password) == "" {
		errs.add("password", "password is required")
	}
	return errs
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Rechaza formas con display name ("Alice <a@x.com>").
	return addr.Address == email
}

// isValidPhone acepta dígitos, espacios y los separadores usuales,
// con al menos 7 dígitos.
func isValidPhone(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == '-' || r == '(' || r == ')' || r == ' ':
		default:
			return false
		}
	}
	return digits >= 7
}

func isValidNationalID(id string) bool {
	if len(id) != 12 {
		return false
	}
	for _, r := range id {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
