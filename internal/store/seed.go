// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-registry/models"
)

const seedUsersCount = 3

// SeedUsers returns the records every fresh registry starts with:
// ids 1..3, "User N", "userN@example.com".
func SeedUsers() []models.User {
	users := make([]models.User, 0, seedUsersCount)
	for i := 1; i <= seedUsersCount; i++ {
		users = append(users, models.NewUser(
			int64(i),
			fmt.Sprintf("User %d", i),
			fmt.Sprintf("user%d@example.com", i),
		))
	}

	return users
}

func maxID(users []models.User) int64 {
	var m int64
	for _, u := range users {
		if u.ID > m {
			m = u.ID
		}
	}

	return m
}

// cloneUser copies the pointed-to strings so callers never share memory
// with the stored record.
func cloneUser(u models.User) models.User {
	return models.User{
		ID:    u.ID,
		Name:  cloneString(u.Name),
		Email: cloneString(u.Email),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
