package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"worktrack/internal/apperr"
	"worktrack/internal/model"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Authenticate checks email/password against the store. Missing user,
// deactivated user and wrong password all return the same error so callers
// cannot probe which accounts exist.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	var u model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	if !u.IsActive {
		return nil, apperr.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return &u, nil
}

// Register creates a self-service account with the EMPLOYEE role.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" || password == "" {
		return nil, apperr.Validation("fullName, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       model.RoleEmployee,
		IsActive:     true,
	}
	err = s.db.WithContext(ctx).Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("email taken: %w", apperr.ErrAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &u, nil
}

// CurrentUser loads the active user behind a verified token's subject.
// Returns nil without error when the user is gone or deactivated.
func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).First(&u, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	if !u.IsActive {
		return nil, nil
	}
	return &u, nil
}
