package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/medchart/medchart-api/internal/domain"
	"github.com/medchart/medchart-api/internal/store"
	"github.com/medchart/medchart-api/internal/validation"
)

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	Token string
	User  *domain.User
}

// Service provides user registration and credential verification.
type Service interface {
	// Register validates registration data, hashes the password, and creates
	// the user account. Returns validation.FieldErrors for invalid input and
	// ErrUsernameTaken or ErrEmailTaken on conflicts.
	Register(ctx context.Context, data validation.RegistrationData) (*domain.User, error)

	// Login verifies the credentials and issues an access token.
	// Returns ErrInvalidCredentials when the username is unknown or the
	// password does not match.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// serviceImpl implements the Service interface
type serviceImpl struct {
	userStore  store.UserStore
	jwtService JWTService
	hasher     PasswordHasher
	verifier   PasswordVerifier
	db         *sql.DB
	logger     *slog.Logger
}

// NewService creates a new authentication Service.
func NewService(
	userStore store.UserStore,
	jwtService JWTService,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	db *sql.DB,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceImpl{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		db:         db,
		logger:     logger.With("component", "auth_service"),
	}
}

// Register validates registration data and creates a new user account.
// Username and email uniqueness are checked inside the creation transaction;
// the username check runs first, so a request conflicting on both reports
// the username conflict.
func (s *serviceImpl) Register(
	ctx context.Context,
	data validation.RegistrationData,
) (*domain.User, error) {
	data.Username = strings.TrimSpace(data.Username)
	data.Email = strings.TrimSpace(data.Email)

	if errs := validation.ValidateUserRegistration(data); errs != nil {
		s.logger.Debug("registration rejected by validation", "error", errs)
		return nil, errs
	}

	hashed, err := s.hasher.Hash(data.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.NewUser(data.Username, data.Email, "")
	user.HashedPassword = hashed

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		if _, err := txStore.GetByUsername(ctx, data.Username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrUserNotFound) {
			return fmt.Errorf("failed to check username: %w", err)
		}

		if _, err := txStore.GetByEmail(ctx, data.Email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrUserNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		return txStore.Create(ctx, user)
	})
	if err != nil {
		// Concurrent registrations can slip past the pre-checks and land on
		// the unique constraints instead.
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, ErrUsernameTaken
		}
		if errors.Is(err, store.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		if errors.Is(err, ErrUsernameTaken) || errors.Is(err, ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error("failed to register user",
			"error", err,
			"username", data.Username)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

// Login verifies the credentials and issues an access token.
func (s *serviceImpl) Login(
	ctx context.Context,
	username, password string,
) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown username",
				"username", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token",
			"error", err,
			"user_id", user.ID)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in successfully",
		"user_id", user.ID,
		"username", user.Username)
	return &LoginResult{Token: token, User: user}, nil
}
