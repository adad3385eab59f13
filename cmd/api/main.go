package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"roomie/event"
	"roomie/handler"
	"roomie/pkg/db"
	"roomie/pkg/logger"
	"roomie/pkg/redis"
	"roomie/repository"
	"roomie/service"
	"roomie/transport"

	"roomie/pkg/mq"
)

const defaultWebPort = 8080

func main() {
	logger.InitLogger("roomie")

	mongoClient, err := db.ConnectMongo()
	if err != nil {
		log.Panic("MongoDB connection failed: ", err)
	}

	mysqlConn, err := db.ConnectMySQL()
	if err != nil {
		log.Panic("MySQL connection failed: ", err)
	}

	mqClient, err := mq.ConnectToRabbitMQ()
	if err != nil {
		log.Panic("RabbitMQ connection failed: ", err)
	}
	defer mqClient.Conn.Close()

	if err := logger.EnableFanout(mqClient); err != nil {
		log.Printf("Log fanout disabled: %v", err)
	}

	redisClient, err := redis.NewRedisClient()
	if err != nil {
		// Sessions come from the bot collaborator; without Redis the API
		// still works on explicit telegram_id parameters.
		log.Printf("Redis unavailable, session resolution disabled: %v", err)
		redisClient = nil
	}

	userRepo, err := repository.NewUserRepository(mongoClient)
	if err != nil {
		log.Panic("Failed to init user repository: ", err)
	}
	propertyRepo, err := repository.NewPropertyRepository(mongoClient)
	if err != nil {
		log.Panic("Failed to init property repository: ", err)
	}

	likeRepo := repository.NewLikeRepository(mysqlConn)
	if err := likeRepo.InitDB(); err != nil {
		log.Panic("Failed to migrate likes: ", err)
	}
	matchRepo := repository.NewMatchRepository(mysqlConn)
	if err := matchRepo.InitDB(); err != nil {
		log.Panic("Failed to migrate matches: ", err)
	}

	emitter, err := event.NewEmitter(mqClient)
	if err != nil {
		log.Panic("Failed to init match emitter: ", err)
	}

	userService := service.NewUserService(userRepo)
	discoveryService := service.NewDiscoveryService(userRepo, propertyRepo, likeRepo, matchRepo)
	likeService := service.NewLikeService(userRepo, likeRepo, matchRepo, emitter)

	userHandler := handler.NewUserHandler(userService)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryService)
	likeHandler := handler.NewLikeHandler(likeService)

	router := transport.NewRouter(userHandler, discoveryHandler, likeHandler, redisClient)

	webPort := defaultWebPort
	if p := os.Getenv("WEB_PORT"); p != "" {
		fmt.Sscanf(p, "%d", &webPort)
	}

	logger.Info("🚀 Roomie API started", map[string]int{"port": webPort})
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", webPort), router))
}
