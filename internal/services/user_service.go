package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zemedic/zemedic-be/internal/apierr"
	"github.com/zemedic/zemedic-be/internal/auth"
	"github.com/zemedic/zemedic-be/internal/models"
)

// UserServiceProvider defines the interface for the user directory.
type UserServiceProvider interface {
	Create(ctx context.Context, input CreateUserInput) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
}

// CreateUserInput carries the fields needed to register a user.
type CreateUserInput struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	Role             models.Role
	MedicalLicenseID string
}

// UserService persists and looks up user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

const userColumns = "id, email, first_name, last_name, role, medical_license_id, password_hash, created_at"

// Create registers a new user. The password is hashed before it is stored;
// the plaintext never leaves this call.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (models.User, error) {
	if input.Email == "" || input.Password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", apierr.ErrValidation)
	}
	if !input.Role.Valid() {
		return models.User{}, fmt.Errorf("%w: unknown role %q", apierr.ErrValidation, input.Role)
	}
	if input.Role == models.RoleDoctor && input.MedicalLicenseID == "" {
		return models.User{}, fmt.Errorf("%w: medical license ID required for doctor registration", apierr.ErrValidation)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM users WHERE email = ?", input.Email).Scan(&count); err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, apierr.ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:               uuid.New().String(),
		Email:            input.Email,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Role:             input.Role,
		MedicalLicenseID: input.MedicalLicenseID,
		PasswordHash:     hash,
		CreatedAt:        time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users("+userColumns+") VALUES(?, ?, ?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.FirstName, user.LastName, string(user.Role),
		user.MedicalLicenseID, user.PasswordHash, user.CreatedAt.UnixNano())
	if err != nil {
		// The UNIQUE constraint catches registrations racing on the same email.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, apierr.ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return user, nil
}

// GetByEmail retrieves a single user by their email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
}

// GetByID retrieves a single user by their ID.
func (s *UserService) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.getUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
}

// Authenticate verifies a user's credentials. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apierr.ErrNotFound) {
			return models.User{}, apierr.ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, apierr.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var user models.User
	var role string
	var createdAt int64
	row := s.db.QueryRowContext(ctx, query, arg)
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&role, &user.MedicalLicenseID, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apierr.ErrNotFound
		}
		return models.User{}, err
	}
	user.Role = models.Role(role)
	user.CreatedAt = time.Unix(0, createdAt).UTC()
	return user, nil
}
