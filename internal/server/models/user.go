// Package models defines the persisted entities. JSON tags double as the
// on-disk field names for the file backend.
package models

import "time"

// User is an account record. PasswordHash is persisted but must never be
// returned by the HTTP layer.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
