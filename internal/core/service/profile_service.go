package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mvisser/enroll/internal/core/domain"
	"github.com/mvisser/enroll/internal/core/repository"
)

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

// View loads the user bound to a session and derives the current age.
// A missing row returns ErrUserNotFound, an unparseable birthdate
// ErrInvalidBirthdate; callers treat both as data-integrity soft failures.
func (s *ProfileService) View(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	birthdate, err := time.Parse("2006-01-02", user.Birthdate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBirthdate, user.Birthdate)
	}

	return &domain.Profile{
		User: user,
		Age:  Age(birthdate, time.Now()),
	}, nil
}

// Age returns the whole years between birthdate and today, one less if the
// birthday has not yet occurred this year.
func Age(birthdate, today time.Time) int {
	years := today.Year() - birthdate.Year()
	if today.Month() < birthdate.Month() ||
		(today.Month() == birthdate.Month() && today.Day() < birthdate.Day()) {
		years--
	}
	return years
}
