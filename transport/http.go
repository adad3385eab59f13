package transport

import (
	"net/http"

	"roomie/handler"
	"roomie/pkg/middleware"
	"roomie/pkg/redis"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func NewRouter(
	userHandler *handler.UserHandler,
	discoveryHandler *handler.DiscoveryHandler,
	likeHandler *handler.LikeHandler,
	redisClient *redis.RedisClient,
) http.Handler {
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if redisClient != nil {
		mux.Use(middleware.Session(redisClient))
	}

	mux.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Post("/api/users", userHandler.RegisterUser)
	mux.Get("/api/users/me", userHandler.FindMe)
	mux.Put("/api/users/me", userHandler.UpdateMe)

	mux.Get("/api/properties", discoveryHandler.FindProperties)
	mux.Get("/api/matches", discoveryHandler.FindCandidates)
	mux.Get("/api/user-matches", discoveryHandler.FindMatches)
	mux.Get("/api/liked-properties", discoveryHandler.FindLikedProperties)

	mux.Post("/api/likes", likeHandler.CreateLike)

	return mux
}
