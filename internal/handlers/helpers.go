package handlers

import (
	"encoding/json"
	"net/http"
)

// Тексты типовых ошибок API.
const (
	msgUnauthenticated = "Authentication credentials were not provided."
	msgNotFound        = "Not found."
	msgInvalidPage     = "Invalid page."
	msgMalformedBody   = "Malformed request body."
	msgInternal        = "Internal server error."
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail — единый формат ошибок, не привязанных к полям: {"detail": ...}.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}
