// Package models holds the PubHub platform's entity and request/response
// shapes exactly as the API serializes them: snake_case scalar fields,
// capitalized keys for embedded relations.
package models

import "time"

// User is an account on the platform. Group is a reference, never owned:
// the server resolves it, the client only reads it.
type User struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	Avatar           *string `json:"avatar"`
	IsGreetingClosed bool    `json:"is_greeting_closed"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	GroupID          string  `json:"group_id"`
	IsBlocked        bool    `json:"is_block"`

	LastVisitAt time.Time `json:"last_visit_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Group Group `json:"Group"`
}

// Group is the account category (admin, regular, ...).
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsAvailable bool   `json:"is_available"`
}

// CreateUserRequest carries the fields of a not-yet-existing account.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched
// by the server.
type UpdateUserRequest struct {
	ID               string     `json:"id"`
	Name             *string    `json:"name,omitempty"`
	Description      *string    `json:"description,omitempty"`
	Avatar           *string    `json:"avatar,omitempty"`
	IsGreetingClosed *bool      `json:"is_greeting_closed,omitempty"`
	Email            *string    `json:"email,omitempty"`
	IsBlocked        *bool      `json:"is_block,omitempty"`
	GroupID          *string    `json:"group_id,omitempty"`
	LastVisitTime    *time.Time `json:"last_visit_time,omitempty"`
}
