package models

import "time"

// User is a platform account, authenticated by email. A user with an
// empty PasswordHash exists but can never log in.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	IsActive     bool       `json:"is_active"`
	IsStaff      bool       `json:"is_staff"`
	IsSuperuser  bool       `json:"is_superuser"`
	DateJoined   time.Time  `json:"date_joined"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
