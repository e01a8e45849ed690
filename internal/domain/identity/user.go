package identity

import (
	"regexp"
	"strings"

	"github.com/imovelliz/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]{2,49}$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// User represents an account that can own and favorite properties.
// The username doubles as the human-facing key that property ownership is
// resolved through, so it is unique and normalized to lower case.
type User struct {
	shared.BaseAggregateRoot
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with a hashed password
func NewUser(username, name, email, password string) (*User, error) {
	normalized := strings.ToLower(strings.TrimSpace(username))
	if !usernameRegex.MatchString(normalized) {
		return nil, shared.NewDomainError("INVALID_USERNAME",
			"Username must be 3-50 characters of lower-case letters, digits, '.', '_' or '-'")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name is required")
	}
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(normalizedEmail) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email address")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          normalized,
		Name:              strings.TrimSpace(name),
		Email:             normalizedEmail,
		PasswordHash:      string(hash),
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
