package entity

import "time"

// User is the read model of an account owner used by the portfolio and CV renderers
type User struct {
	ID              uint64     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Username        string     `json:"username"`
	PhotoURL        string     `json:"photo"`
	EmailVerifiedAt *time.Time `json:"-"`
	CreatedAt       time.Time  `json:"-"`
}

// IsVerified reports whether the user confirmed their email address
func (u *User) IsVerified() bool {
	return u.EmailVerifiedAt != nil
}
