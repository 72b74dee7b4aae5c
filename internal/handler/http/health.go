// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-registry/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.HealthResponse{
		Status:  "ok",
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, messageRouteNotFound, http.StatusNotFound)
}
