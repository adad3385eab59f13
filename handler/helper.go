package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"roomie/pkg/types/commontype"
)

// telegramIDFrom resolves the caller's identity: the session middleware sets
// X-Telegram-ID, bot clients without a session pass telegram_id as a query
// parameter.
func telegramIDFrom(r *http.Request) (int64, error) {
	raw := r.Header.Get("X-Telegram-ID")
	if raw == "" {
		raw = r.URL.Query().Get("telegram_id")
	}
	if raw == "" {
		return 0, errors.New("telegram_id is required")
	}

	telegramID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.New("telegram_id must be a number")
	}
	return telegramID, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the error taxonomy to transport status codes: validation
// and duplicate-like failures are the caller's to fix, unknown identities are
// 404, everything else is an internal fault.
func writeError(w http.ResponseWriter, err error) {
	if !commontype.IsBusinessError(err) {
		log.Printf("❌ Internal error: %v", err)
	}

	var ve *commontype.ValidationError
	switch {
	case errors.As(err, &ve):
		http.Error(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, commontype.ErrDuplicateLike):
		http.Error(w, "Like already exists", http.StatusBadRequest)
	case errors.Is(err, commontype.ErrNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
