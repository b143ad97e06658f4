package service

import (
	"context"
	"fmt"

	"github.com/mvisser/enroll/internal/core/domain"
	"github.com/mvisser/enroll/internal/core/repository"
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 10

// RegisterInput carries the validated registration form fields. Image is the
// stored reference path, empty when no image was uploaded.
type RegisterInput struct {
	Name      string
	Birthdate string
	Address   string
	Username  string
	Password  string
	Image     string
}

type AccountService struct {
	userRepo repository.UserRepository
}

func NewAccountService(userRepo repository.UserRepository) *AccountService {
	return &AccountService{userRepo: userRepo}
}

// HashPassword hashes a password using bcrypt
func (s *AccountService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a hash
func (s *AccountService) VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register creates a new user with a hashed password. It returns
// repository.ErrDuplicateUsername when the username is taken, either by the
// lookup here or by the UNIQUE constraint when two registrations race.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrDuplicateUsername
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := domain.NewUser(in.Name, in.Birthdate, in.Address, in.Username, hash, in.Image)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user by username and password. Unknown usernames and
// wrong passwords both return ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !s.VerifyPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
