package models

import "time"

const RoleAdmin = "admin"

// Claims is the decoded payload of a verified session token. It exists only
// for the duration of a single request evaluation and is never persisted.
type Claims struct {
	Subject   string    `json:"sub"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}
