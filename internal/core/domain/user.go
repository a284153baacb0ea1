package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserStatus gates authentication. Only active users may log in.
type UserStatus int

const (
	UserDisabled UserStatus = 0
	UserActive   UserStatus = 1
)

// User models an account in the credential store.
type User struct {
	Entity
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	Nickname     string     `json:"nickname,omitempty"`
	Avatar       string     `json:"avatar,omitempty"`
	Gender       int        `json:"gender,omitempty"`
	Birthday     *time.Time `json:"birthday,omitempty"`
	Role         string     `json:"role"`
	Status       UserStatus `json:"status"`
	LastLoginAt  *time.Time `json:"lastLoginTime,omitempty"`
	LastLoginIP  string     `json:"lastLoginIp,omitempty"`
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == UserActive
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
