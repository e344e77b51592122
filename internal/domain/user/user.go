// Package user holds the User aggregate and its value objects. All types are
// immutable: constructors validate, change methods return new instances, and
// no setters exist.
package user

import "time"

// User is the user aggregate. Fields are unexported so instances can only be
// produced by New and Reconstruct and never mutated afterwards.
type User struct {
	id        ID
	email     Email
	name      Username
	createdAt time.Time
	updatedAt time.Time
}

// New creates a User with a fresh identifier. Both timestamps are set to the
// same instant.
func New(email Email, name Username) *User {
	now := time.Now().UTC()
	return &User{
		id:        GenerateID(),
		email:     email,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}
}

// Reconstruct rehydrates a User from trusted storage. Timestamps are taken
// as-is; the round trip must not alter them.
func Reconstruct(id ID, email Email, name Username, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the user identifier.
func (u *User) ID() ID { return u.id }

// Email returns the user's email address.
func (u *User) Email() Email { return u.email }

// Name returns the user's name.
func (u *User) Name() Username { return u.name }

// CreatedAt returns the creation instant.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last modification instant.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// ChangeEmail returns a copy of the user with the email replaced and
// updatedAt refreshed. The receiver is left unchanged.
func (u *User) ChangeEmail(email Email) *User {
	return &User{
		id:        u.id,
		email:     email,
		name:      u.name,
		createdAt: u.createdAt,
		updatedAt: u.nextUpdate(),
	}
}

// ChangeName returns a copy of the user with the name replaced and
// updatedAt refreshed. The receiver is left unchanged.
func (u *User) ChangeName(name Username) *User {
	return &User{
		id:        u.id,
		email:     u.email,
		name:      name,
		createdAt: u.createdAt,
		updatedAt: u.nextUpdate(),
	}
}

// Equals compares users by identity. Two users with the same identifier are
// equal regardless of their other fields.
func (u *User) Equals(other *User) bool {
	return other != nil && u.id.Equals(other.id)
}

// nextUpdate returns now, clamped so updatedAt never moves backwards even if
// the wall clock does.
func (u *User) nextUpdate() time.Time {
	now := time.Now().UTC()
	if now.Before(u.updatedAt) {
		return u.updatedAt
	}
	return now
}
