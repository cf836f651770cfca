package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Accounts are created and refreshed by the login upsert keyed on
// the identity provider's subject; nothing in the normal flow deletes them.
//
// Fields:
//
//	ID         – internal auto-increment primary key.
//	ExternalID – unique subject issued by the identity provider (users.user_id).
//	Email      – email address reported by the provider.
//	Name       – display name (may be empty).
//	Nickname   – short handle (may be empty).
//	LastLogin  – timestamp of the most recent successful login.
type User struct {
	ID         uint64    // users.id
	ExternalID string    // users.user_id
	Email      string    // users.email
	Name       string    // users.name
	Nickname   string    // users.nickname
	LastLogin  time.Time // users.last_login
}
