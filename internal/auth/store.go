package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// User is a registered principal. Only the credential hash is persisted;
// the classification pipeline sees users purely as opaque identities.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

// UserStore persists user credentials in Postgres.
//
// UserStore implements the Users interface.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore opens the database connection and migrates the users table.
func NewUserStore(cfg PostgresConfig) (*UserStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("auth: failed to connect to user store: %w", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("auth: failed to migrate user store: %w", err)
	}
	return &UserStore{db: db}, nil
}

// NewUserStoreFromDB wraps an existing gorm handle. Used by tests.
func NewUserStoreFromDB(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a user with a bcrypt-hashed password.
// Returns ErrUserExists when the username is already taken.
func (s *UserStore) Register(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth: failed to hash password: %w", err)
	}

	user := User{Username: username, PasswordHash: string(hash)}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		return fmt.Errorf("auth: failed to create user: %w", err)
	}
	return nil
}

// Authenticate verifies the username/password pair.
// Returns ErrInvalidCredentials on unknown user or password mismatch; the
// two cases are indistinguishable to the caller on purpose.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) error {
	var user User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("auth: user lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Close releases the underlying database connection pool.
func (s *UserStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
