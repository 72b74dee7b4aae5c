// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a single record of the user registry.
//
// Name and Email are pointers: a field that was absent from the request body
// is kept absent and serialised as JSON null. Nothing validates them.
type User struct {
	// ID identifies the record in the registry. Depending on the configured
	// id strategy it is not guaranteed to be unique.
	ID int64 `json:"id"`

	// Name is the display name of the user.
	Name *string `json:"name"`

	// Email is the contact address of the user. Uniqueness is not enforced.
	Email *string `json:"email"`
}

// UserPayload is the body accepted by the create and update routes.
type UserPayload struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// NewUser builds a record from plain strings. It is mostly used for seeding.
func NewUser(id int64, name, email string) User {
	return User{
		ID:    id,
		Name:  &name,
		Email: &email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
