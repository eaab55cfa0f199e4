// Package models defines the domain types shared across the MindToEye
// backend: projects, users, and the brand concepts they own.
package models

import "time"

// Project groups the brand concepts created for a single client engagement.
// A project owns its concepts exclusively: deleting a project deletes them.
type Project struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	ClientName *string   `json:"clientName,omitempty"`
	UserID     int       `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// User is an account that owns projects. Passwords are stored bcrypt-hashed.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
