package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"securebank/internal/domain"
	"securebank/internal/email"
	"securebank/internal/repository"
)

// AccountService coordina reglas de negocio de registro y login.
type AccountService struct {
	logger       *zap.Logger
	accounts     repository.AccountRepository
	hasher       *PasswordHasher
	tokens       *TokenService
	mailSender   email.Sender
	limiter      LoginRateLimiter
	storeTimeout time.Duration
}

var (
	// ErrAccountExists cubre colisión en cualquiera de los cuatro campos únicos.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidCredentials es la clase visible de los dos fallos de login;
	// los sub-errores quedan distinguibles solo para logging interno.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentifierNotFound = fmt.Errorf("identifier not found: %w", ErrInvalidCredentials)
	ErrPasswordMismatch   = fmt.Errorf("password mismatch: %w", ErrInvalidCredentials)

	ErrTooManyAttempts  = errors.New("too many login attempts")
	ErrStoreUnavailable = errors.New("account store unavailable")
)

const defaultStoreTimeout = 3 * time.Second

// AccountServiceOptions agrupa colaboradores opcionales.
type AccountServiceOptions struct {
	MailSender   email.Sender
	Limiter      LoginRateLimiter
	StoreTimeout time.Duration
}

func NewAccountService(logger *zap.Logger, accounts repository.AccountRepository, hasher *PasswordHasher, tokens *TokenService, opts AccountServiceOptions) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if hasher == nil {
		hasher = NewPasswordHasher(0)
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = defaultStoreTimeout
	}
	return &AccountService{
		logger:       logger,
		accounts:     accounts,
		hasher:       hasher,
		tokens:       tokens,
		mailSender:   opts.MailSender,
		limiter:      opts.Limiter,
		storeTimeout: opts.StoreTimeout,
	}
}

// SignUpInput es la entrada de registro, ya desacoplada del transporte.
type SignUpInput struct {
	DisplayName string
	Password    string
	Email       string
	Phone       string
	NationalID  string
	Gender      string
	AccountType string
	Branch      string
}

// LoginInput es la entrada de login.
type LoginInput struct {
	Identifier string
	Password   string
}

// AuthResult es la respuesta común de registro y login.
// Token queda vacío en el registro: solo el login emite tokens.
type AuthResult struct {
	AccountID   int64  `json:"account_id"`
	DisplayName string `json:"display_name"`
	Message     string `json:"message"`
	Token       string `json:"token,omitempty"`
}

// SignUp valida, chequea unicidad, deriva el digest y persiste la cuenta.
func (s *AccountService) SignUp(ctx context.Context, input SignUpInput) (AuthResult, error) {
	if s.accounts == nil {
		return AuthResult{}, errors.New("account service not configured")
	}

	input.DisplayName = strings.TrimSpace(input.DisplayName)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.NationalID = strings.TrimSpace(input.NationalID)
	input.Gender = strings.TrimSpace(input.Gender)
	input.AccountType = strings.TrimSpace(input.AccountType)
	input.Branch = strings.TrimSpace(input.Branch)

	if errs := ValidateSignUp(input); len(errs) > 0 {
		return AuthResult{}, errs
	}

	taken, err := s.exists(ctx, input)
	if err != nil {
		return AuthResult{}, s.storeErr("exists check", err)
	}
	if taken {
		return AuthResult{}, ErrAccountExists
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthResult{}, err
	}

	account := domain.Account{
		DisplayName:    input.DisplayName,
		PasswordDigest: digest,
		Email:          input.Email,
		Phone:          input.Phone,
		NationalID:     input.NationalID,
		Gender:         input.Gender,
		AccountType:    input.AccountType,
		Branch:         input.Branch,
		CreatedAt:      time.Now().UTC(),
	}

	id, err := s.create(ctx, account)
	if err != nil {
		// El constraint de la base gana cualquier carrera que el chequeo
		// previo no alcanzó a ver.
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return AuthResult{}, ErrAccountExists
		}
		return AuthResult{}, s.storeErr("create", err)
	}

	s.sendWelcome(ctx, account)

	return AuthResult{
		AccountID:   id,
		DisplayName: account.DisplayName,
		Message:     "User registered successfully!",
	}, nil
}

// Login busca la cuenta por identificador, verifica el digest y emite el token.
func (s *AccountService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	if s.accounts == nil || s.tokens == nil {
		return AuthResult{}, errors.New("account service not configured")
	}

	input.Identifier = strings.TrimSpace(input.Identifier)
	if errs := ValidateLogin(input); len(errs) > 0 {
		return AuthResult{}, errs
	}

	if s.limiter != nil && !s.limiter.Allow(strings.ToLower(input.Identifier)) {
		return AuthResult{}, ErrTooManyAttempts
	}

	account, err := s.lookup(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AuthResult{}, ErrIdentifierNotFound
		}
		return AuthResult{}, s.storeErr("lookup", err)
	}

	if account.PasswordDigest == "" || !s.hasher.Verify(input.Password, account.PasswordDigest) {
		return AuthResult{}, ErrPasswordMismatch
	}

	token, err := s.tokens.Issue(account.ID, account.DisplayName)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		AccountID:   account.ID,
		DisplayName: account.DisplayName,
		Message:     "Login successful!",
		Token:       token,
	}, nil
}

func (s *AccountService) exists(ctx context.Context, input SignUpInput) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.accounts.Exists(ctx, input.DisplayName, input.Email, input.Phone, input.NationalID)
}

func (s *AccountService) create(ctx context.Context, account domain.Account) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.accounts.Create(ctx, account)
}

func (s *AccountService) lookup(ctx context.Context, identifier string) (domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()
	return s.accounts.GetByIdentifier(ctx, identifier)
}

// storeErr clasifica fallos del store: deadlines y cancelaciones se
// reportan como store no disponible, el resto se propaga envuelto.
func (s *AccountService) storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		s.logger.Warn("account store timeout", zap.String("op", op), zap.Error(err))
		return ErrStoreUnavailable
	}
	return fmt.Errorf("account store %s: %w", op, err)
}

func (s *AccountService) sendWelcome(ctx context.Context, account domain.Account) {
	if s.mailSender == nil {
		return
	}
	if err := s.mailSender.SendWelcome(ctx, account.Email, account.DisplayName); err != nil {
		s.logger.Warn("send welcome email failed", zap.Error(err), zap.String("email", account.Email))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
