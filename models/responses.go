// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the JSON body of every non-success response,
// e.g. {"message":"Unauthorized"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the unauthenticated health route.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
