package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"roomie/pkg/dto"
	"roomie/pkg/models"
	"roomie/pkg/types/commontype"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const profileDatabase = "roomie_db"

type UserRepository struct {
	client *mongo.Client
}

func NewUserRepository(client *mongo.Client) (*UserRepository, error) {
	repo := &UserRepository{client: client}
	if err := repo.InitDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize user database: %v", err)
	}
	return repo, nil
}

func (r *UserRepository) collection() *mongo.Collection {
	return r.client.Database(profileDatabase).Collection("users")
}

// InitDatabase creates the users collection with its geospatial and
// identity indexes.
func (r *UserRepository) InitDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := r.client.Database(profileDatabase)
	if err := db.CreateCollection(ctx, "users"); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			log.Printf("Error creating collection users: %v", err)
			return err
		}
	}

	_, err := r.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys:    bson.D{{Key: "telegram_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	})
	if err != nil {
		log.Printf("Error creating indexes for users: %v", err)
		return err
	}

	return nil
}

// GetByTelegramID resolves an external identity. Absent is (nil, nil),
// "no profile yet" is a normal state for a new visitor.
func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := r.collection().FindOne(ctx, bson.M{"telegram_id": telegramID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		log.Printf("❌ Failed to get user by telegram id %d: %v", telegramID, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return &user, nil
}

// GetByID looks up a profile by its internal id
func (r *UserRepository) GetByID(id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := r.collection().FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	} else if err != nil {
		log.Printf("❌ Failed to get user by id %s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return &user, nil
}

// Insert persists a new profile. A concurrent create for the same telegram id
// loses against the unique index and is reported as a validation failure.
func (r *UserRepository) Insert(user models.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.collection().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return commontype.NewValidationError("telegram_id", "profile already exists")
		}
		log.Printf("❌ Failed to insert user %d: %v", user.TelegramID, err)
		return fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return nil
}

// Update applies only the supplied fields of a partial update
func (r *UserRepository) Update(telegramID int64, update dto.UserUpdateDTO) error {
	set := bson.M{}
	if update.Age != nil {
		set["age"] = *update.Age
	}
	if update.Gender != nil {
		set["gender"] = *update.Gender
	}
	if update.About != nil {
		set["about"] = *update.About
	}
	if update.PriceRangeMin != nil {
		set["price_range_min"] = *update.PriceRangeMin
	}
	if update.PriceRangeMax != nil {
		set["price_range_max"] = *update.PriceRangeMax
	}
	if update.MetroStation != nil {
		set["metro_station"] = *update.MetroStation
	}
	if update.SearchRadius != nil {
		set["search_radius"] = *update.SearchRadius
	}
	if update.Latitude != nil && update.Longitude != nil {
		set["location"] = models.NewGeoPoint(*update.Longitude, *update.Latitude)
	}

	if len(set) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection().UpdateOne(ctx, bson.M{"telegram_id": telegramID}, bson.M{"$set": set})
	if err != nil {
		log.Printf("❌ Failed to update user %d: %v", telegramID, err)
		return fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return nil
}

// FindUsersNear runs the spherical proximity query from the given profile's
// point: candidates within the profile's radius (boundary inclusive), active,
// not the profile itself. Budget and reciprocity policy is applied by the
// discovery service on top of this set. Distance comes back in meters.
// No ordering is promised.
func (r *UserRepository) FindUsersNear(user *models.User) ([]models.UserWithDistance, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	radiusMeters := float64(user.SearchRadius) * commontype.MetersPerKilometer

	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: user.Location},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: radiusMeters},
			{Key: "spherical", Value: true},
		}}},
		{{Key: "$match", Value: bson.D{
			{Key: "telegram_id", Value: bson.D{{Key: "$ne", Value: user.TelegramID}}},
			{Key: "is_active", Value: true},
		}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("❌ Failed to search users near %d: %v", user.TelegramID, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var candidates []models.UserWithDistance
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return candidates, nil
}
