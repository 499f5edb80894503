package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"helpize/internal/models"
	"helpize/internal/repositories/interfaces"
	"helpize/internal/utils"
	"helpize/internal/validators"
	"helpize/pkg/logger"
)

type AuthService interface {
	// Signup creates a user. The caller establishes the session on success.
	Signup(ctx context.Context, request *validators.SignupRequest) (*models.User, error)
	// Login returns the user iff the email exists and the password matches.
	Login(ctx context.Context, request *validators.LoginRequest) (*models.User, error)
	GetProfile(ctx context.Context, email string) (*models.User, error)
	// EnsureUser creates user with password unless the email is taken.
	EnsureUser(ctx context.Context, user *models.User, password string) error
}

type authService struct {
	userRepo   interfaces.UserRepository
	bcryptCost int
	logger     *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, bcryptCost int, log *logger.Logger) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authService{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
		logger:     log,
	}
}

func (s *authService) Signup(ctx context.Context, request *validators.SignupRequest) (*models.User, error) {
	if email := utils.NormalizeEmail(request.Email); email != "" {
		_, err := s.userRepo.GetByEmail(ctx, email)
		if err == nil {
			return nil, ErrDuplicateEmail
		}
		if !errors.Is(err, interfaces.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
	}

	if errs := validators.ValidateSignup(request); len(errs) > 0 {
		return nil, errs
	}

	age, err := strconv.Atoi(request.Age)
	if err != nil {
		return nil, validators.ValidationErrors{{Field: "age", Tag: "number", Value: request.Age, Message: "Age must be a whole number"}}
	}

	user := &models.User{
		Email:      utils.NormalizeEmail(request.Email),
		Name:       request.Name,
		Age:        age,
		Phone:      request.Phone,
		BloodGroup: request.BloodGroup,
		Address:    request.Address,
	}

	if err := s.create(ctx, user, request.Password); err != nil {
		return nil, err
	}

	s.logger.LogUserAction(utils.MaskEmail(user.Email), utils.EventUserRegistered, nil)

	return user, nil
}

func (s *authService) Login(ctx context.Context, request *validators.LoginRequest) (*models.User, error) {
	email := utils.NormalizeEmail(request.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, interfaces.ErrNotFound) {
		s.logFailedLogin(email, "unknown_email")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		s.logFailedLogin(email, "wrong_password")
		return nil, ErrInvalidCredentials
	}

	s.logger.LogUserAction(utils.MaskEmail(email), utils.EventUserLogin, nil)

	return user, nil
}

func (s *authService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, interfaces.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}

func (s *authService) EnsureUser(ctx context.Context, user *models.User, password string) error {
	user.Email = utils.NormalizeEmail(user.Email)

	err := s.create(ctx, user, password)
	if errors.Is(err, ErrDuplicateEmail) {
		return nil
	}
	return err
}

func (s *authService) create(ctx context.Context, user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)

	err = s.userRepo.Create(ctx, user)
	if errors.Is(err, interfaces.ErrDuplicateKey) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *authService) logFailedLogin(email, reason string) {
	s.logger.LogSecurityEvent("login_failed", "low", map[string]interface{}{
		"user":   utils.MaskEmail(email),
		"reason": reason,
	})
}

// DefaultUser is the directory entry present on a fresh install.
func DefaultUser() (*models.User, string) {
	return &models.User{
		Email:      "admin@example.com",
		Name:       "Admin User",
		Age:        30,
		Phone:      "123-456-7890",
		BloodGroup: "O+",
		Address:    "123 Main St",
	}, "password"
}
