package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/india-resources/directory-api/internal/db"
)

// RegisterUser creates a new contributor account with a bcrypt-hashed
// password. The reserved admin username and already-taken usernames fail with
// ErrDuplicateUsername. Username comparison is case-sensitive.
func RegisterUser(dbConn *gorm.DB, username, password, reservedUsername string) (*db.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password cannot be empty")
	}
	if username == reservedUsername {
		return nil, ErrDuplicateUsername
	}

	var existing db.User
	err := dbConn.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := db.User{
		Username: username,
		Password: string(hashed),
	}
	if err := dbConn.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies a contributor's credentials against the users
// table. Both an unknown username and a wrong password yield
// ErrInvalidCredentials. The admin credential pair is checked by the caller
// before this runs; admin is never a row here.
func AuthenticateUser(dbConn *gorm.DB, username, password string) (*db.User, error) {
	var user db.User
	err := dbConn.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func GetUserByUsername(dbConn *gorm.DB, username string) (*db.User, error) {
	var user db.User
	err := dbConn.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
