package middleware

import (
	"net/http"
	"strconv"

	"roomie/pkg/redis"
)

// Session resolves the session cookie set by the bot front-end to a telegram id
// and stores it in the X-Telegram-ID header for downstream handlers. Requests
// without a cookie pass through untouched; those carry telegram_id as a query
// parameter instead.
func Session(redisClient *redis.RedisClient) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("session_id")
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			telegramID, err := redisClient.GetTelegramIDBySessionID(cookie.Value)
			if err != nil {
				http.Error(w, "Unauthorized: Invalid session ID", http.StatusUnauthorized)
				return
			}

			r.Header.Set("X-Telegram-ID", strconv.FormatInt(telegramID, 10))
			next.ServeHTTP(w, r)
		})
	}
}
