package handler

import (
	"net/http/httptest"
	"testing"

	"roomie/pkg/types/commontype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramIDFromHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/me", nil)
	r.Header.Set("X-Telegram-ID", "100")

	id, err := telegramIDFrom(r)
	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
}

func TestTelegramIDFromQueryFallback(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/me?telegram_id=200", nil)

	id, err := telegramIDFrom(r)
	require.NoError(t, err)
	assert.Equal(t, int64(200), id)
}

func TestTelegramIDHeaderWinsOverQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/me?telegram_id=200", nil)
	r.Header.Set("X-Telegram-ID", "100")

	id, err := telegramIDFrom(r)
	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
}

func TestTelegramIDMissing(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/me", nil)

	_, err := telegramIDFrom(r)
	assert.Error(t, err)
}

func TestTelegramIDNotANumber(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/users/me?telegram_id=abc", nil)

	_, err := telegramIDFrom(r)
	assert.Error(t, err)
}

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", commontype.NewValidationError("search_radius", "must be positive"), 400},
		{"duplicate like", commontype.ErrDuplicateLike, 400},
		{"not found", commontype.ErrNotFound, 404},
		{"store fault", commontype.ErrStoreUnavailable, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}
