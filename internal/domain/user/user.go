package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
)

type User struct {
	id              uint
	name            string
	email           string
	passwordHash    string
	role            authorization.UserRole
	division        *string
	profileImageURL *string
	createdAt       time.Time
}

// PasswordHasher abstracts the hashing mechanism so the domain does not
// depend on bcrypt directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func NewUser(name, email string, role authorization.UserRole, division *string) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !isValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	return &User{
		name:      name,
		email:     email,
		role:      role,
		division:  division,
		createdAt: time.Now(),
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	division *string,
	profileImageURL *string,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	return &User{
		id:              id,
		name:            name,
		email:           email,
		passwordHash:    passwordHash,
		role:            role,
		division:        division,
		profileImageURL: profileImageURL,
		createdAt:       createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) Division() *string {
	return u.division
}

func (u *User) ProfileImageURL() *string {
	return u.profileImageURL
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetPassword(password string, hasher PasswordHasher) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.passwordHash = hash
	return nil
}

func (u *User) VerifyPassword(password string, hasher PasswordHasher) error {
	return hasher.Verify(password, u.passwordHash)
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
