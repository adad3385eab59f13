package redis

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-redis/redis/v8"
)

// GetTelegramIDBySessionID resolves a session cookie to the telegram id it was
// issued for. The bot front-end writes the session entry on /start.
func (r *RedisClient) GetTelegramIDBySessionID(sessionID string) (int64, error) {
	val, err := r.Client.Get(ctx, fmt.Sprintf("session:%s", sessionID)).Result()
	if err == redis.Nil {
		return 0, fmt.Errorf("session not found")
	} else if err != nil {
		log.Printf("Get Session Error, %s", err.Error())
		return 0, err
	}

	telegramID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		log.Printf("Invalid telegram id in session %s: %s", sessionID, val)
		return 0, fmt.Errorf("invalid session payload")
	}

	return telegramID, nil
}
