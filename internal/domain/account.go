package domain

import "time"

// Account representa una cuenta registrada en el banco.
// El digest de la contraseña y el documento nacional nunca se serializan.
type Account struct {
	ID             int64     `json:"id"`
	DisplayName    string    `json:"display_name"`
	PasswordDigest string    `json:"-"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	NationalID     string    `json:"-"`
	Gender         string    `json:"gender,omitempty"`
	AccountType    string    `json:"account_type"`
	Branch         string    `json:"branch"`
	CreatedAt      time.Time `json:"created_at"`
}
