package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"securebank/internal/domain"
)

// AccountRepository define el contrato de persistencia para cuentas.
type AccountRepository interface {
	Exists(ctx context.Context, displayName, email, phone, nationalID string) (bool, error)
	Create(ctx context.Context, account domain.Account) (int64, error)
	GetByIdentifier(ctx context.Context, identifier string) (domain.Account, error)
}

// ErrDuplicateAccount indica que un constraint de unicidad rechazó el INSERT.
var ErrDuplicateAccount = errors.New("duplicate account")

// PgAccountRepository implementa AccountRepository usando pgxpool.
//
// Esquema esperado (las cuatro columnas de identidad llevan UNIQUE):
//
//	CREATE TABLE accounts (
//	    id              BIGSERIAL PRIMARY KEY,
//	    display_name    VARCHAR(50)  NOT NULL UNIQUE,
//	    password_digest TEXT         NOT NULL,
//	    email           VARCHAR(100) NOT NULL UNIQUE,
//	    phone           VARCHAR(15)  NOT NULL UNIQUE,
//	    national_id     CHAR(12)     NOT NULL UNIQUE,
//	    gender          VARCHAR(10)  NOT NULL DEFAULT '',
//	    account_type    VARCHAR(20)  NOT NULL,
//	    branch          VARCHAR(50)  NOT NULL,
//	    created_at      TIMESTAMPTZ  NOT NULL DEFAULT now()
//	);
type PgAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPgAccountRepository(pool *pgxpool.Pool) *PgAccountRepository {
	return &PgAccountRepository{pool: pool}
}

func (r *PgAccountRepository) Exists(ctx context.Context, displayName, email, phone, nationalID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM accounts
			WHERE display_name = $1 OR email = $2 OR phone = $3 OR national_id = $4
		)
	`
	var exists bool
	err := r.pool.QueryRow(ctx, query, displayName, email, phone, nationalID).Scan(&exists)
	return exists, err
}

func (r *PgAccountRepository) Create(ctx context.Context, account domain.Account) (int64, error) {
	const query = `
		INSERT INTO accounts (display_name, password_digest, email, phone, national_id, gender, account_type, branch, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		account.DisplayName,
		account.PasswordDigest,
		account.Email,
		account.Phone,
		account.NationalID,
		account.Gender,
		account.AccountType,
		account.Branch,
		account.CreatedAt,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateAccount
		}
		return 0, err
	}
	return id, nil
}

// GetByIdentifier busca por display name, email o documento nacional.
// El teléfono participa en la unicidad pero no es identificador de login.
// El email se compara sin distinguir mayúsculas: el registro lo
// normaliza a minúsculas y el login debe encontrarlo igual.
func (r *PgAccountRepository) GetByIdentifier(ctx context.Context, identifier string) (domain.Account, error) {
	const query = `
		SELECT id, display_name, password_digest, email, phone, national_id, gender, account_type, branch, created_at
		FROM accounts
		WHERE display_name = $1 OR lower(email) = lower($1) OR national_id = $1
	`
	var a domain.Account
	err := r.pool.QueryRow(ctx, query, identifier).Scan(
		&a.ID,
		&a.DisplayName,
		&a.PasswordDigest,
		&a.Email,
		&a.Phone,
		&a.NationalID,
		&a.Gender,
		&a.AccountType,
		&a.Branch,
		&a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Account{}, err
	}
	return a, err
}
