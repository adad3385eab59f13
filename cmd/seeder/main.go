package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"roomie/pkg/db"
	"roomie/pkg/models"
	"roomie/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Seeds the property and user collections with plausible Moscow data for
// local development.

var moscowBounds = struct {
	latMin, latMax float64
	lngMin, lngMax float64
}{55.59, 55.87, 37.32, 37.84}

var metroStations = []string{
	"Сокольники", "Комсомольская", "Чистые пруды", "Лубянка", "Охотный ряд",
	"Кропоткинская", "Парк культуры", "Спортивная", "Университет",
	"Белорусская", "Маяковская", "Тверская", "Павелецкая", "Коломенская",
	"Третьяковская", "Октябрьская", "Киевская", "Смоленская", "Арбатская",
}

var propertyTypes = []string{"apartment", "room", "studio"}

var amenities = []string{
	"WiFi", "Кондиционер", "Стиральная машина", "Посудомоечная машина",
	"Балкон", "Парковка", "Лифт", "Мебель", "Интернет",
}

func moscowPoint() models.GeoPoint {
	lat := moscowBounds.latMin + rand.Float64()*(moscowBounds.latMax-moscowBounds.latMin)
	lng := moscowBounds.lngMin + rand.Float64()*(moscowBounds.lngMax-moscowBounds.lngMin)
	return models.NewGeoPoint(lng, lat)
}

func randomProperty() models.Property {
	propertyType := propertyTypes[rand.Intn(len(propertyTypes))]
	rooms := rand.Intn(4) + 1
	if propertyType == "studio" {
		rooms = 1
	}

	station := metroStations[rand.Intn(len(metroStations))]

	return models.Property{
		ID:           uuid.NewString(),
		Title:        fmt.Sprintf("%d-комн. %s у метро %s", rooms, propertyType, station),
		Description:  "Сдается на длительный срок.",
		Price:        (rand.Intn(50) + 15) * 1000,
		Address:      fmt.Sprintf("Москва, ул. Тестовая, д. %d", rand.Intn(120)+1),
		MetroStation: station,
		Location:     moscowPoint(),
		Rooms:        rooms,
		Area:         float64(rooms*18 + rand.Intn(25)),
		Floor:        rand.Intn(16) + 1,
		TotalFloors:  17,
		PropertyType: propertyType,
		Photos:       []string{fmt.Sprintf("https://picsum.photos/400/300?random=%d", rand.Intn(1000))},
		Amenities:    lo.Samples(amenities, rand.Intn(4)+2),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
}

func randomUser() models.User {
	return models.User{
		ID:            uuid.NewString(),
		TelegramID:    int64(rand.Intn(9_000_000_000) + 1_000_000_000),
		Username:      fmt.Sprintf("tester_%d", rand.Intn(10_000)),
		FirstName:     "Тест",
		LastName:      "Тестов",
		Age:           rand.Intn(28) + 18,
		Gender:        lo.Sample([]string{"male", "female"}),
		PriceRangeMin: (rand.Intn(8) + 5) * 1000,
		PriceRangeMax: (rand.Intn(20) + 20) * 1000,
		MetroStation:  metroStations[rand.Intn(len(metroStations))],
		SearchRadius:  rand.Intn(13) + 3,
		Location:      moscowPoint(),
		CreatedAt:     time.Now().UTC(),
		IsActive:      true,
	}
}

func main() {
	propertyCount := flag.Int("properties", 50, "number of properties to seed")
	userCount := flag.Int("users", 20, "number of users to seed")
	flag.Parse()

	mongoClient, err := db.ConnectMongo()
	if err != nil {
		log.Fatal("MongoDB connection failed: ", err)
	}

	propertyRepo, err := repository.NewPropertyRepository(mongoClient)
	if err != nil {
		log.Fatal("Failed to init property repository: ", err)
	}
	userRepo, err := repository.NewUserRepository(mongoClient)
	if err != nil {
		log.Fatal("Failed to init user repository: ", err)
	}

	for i := 0; i < *propertyCount; i++ {
		if err := propertyRepo.Insert(randomProperty()); err != nil {
			log.Fatal("Failed to seed property: ", err)
		}
	}
	log.Printf("✅ Seeded %d properties", *propertyCount)

	seeded := 0
	for i := 0; i < *userCount; i++ {
		if err := userRepo.Insert(randomUser()); err != nil {
			// Random telegram id collided with an existing profile; skip it.
			log.Printf("Skipping user: %v", err)
			continue
		}
		seeded++
	}
	log.Printf("✅ Seeded %d users", seeded)
}
