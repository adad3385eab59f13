package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"roomie/pkg/models"
	"roomie/pkg/types/commontype"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PropertyRepository struct {
	client *mongo.Client
}

func NewPropertyRepository(client *mongo.Client) (*PropertyRepository, error) {
	repo := &PropertyRepository{client: client}
	if err := repo.InitDatabase(); err != nil {
		return nil, fmt.Errorf("failed to initialize property database: %v", err)
	}
	return repo, nil
}

func (r *PropertyRepository) collection() *mongo.Collection {
	return r.client.Database(profileDatabase).Collection("properties")
}

func (r *PropertyRepository) InitDatabase() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := r.client.Database(profileDatabase)
	if err := db.CreateCollection(ctx, "properties"); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			log.Printf("Error creating collection properties: %v", err)
			return err
		}
	}

	_, err := r.collection().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	})
	if err != nil {
		log.Printf("Error creating indexes for properties: %v", err)
		return err
	}

	return nil
}

// Insert persists a new listing
func (r *PropertyRepository) Insert(property models.Property) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.collection().InsertOne(ctx, property); err != nil {
		log.Printf("❌ Failed to insert property %s: %v", property.ID, err)
		return fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return nil
}

// FindPropertiesNear returns active listings within the profile's radius
// (boundary inclusive) priced inside the profile's budget band, both ends
// inclusive. Distance is spherical, in meters.
func (r *PropertyRepository) FindPropertiesNear(user *models.User) ([]models.PropertyWithDistance, error) {
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
			{Key: "is_active", Value: true},
			{Key: "price", Value: bson.D{
				{Key: "$gte", Value: user.PriceRangeMin},
				{Key: "$lte", Value: user.PriceRangeMax},
			}},
		}}},
	}

	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		log.Printf("❌ Failed to search properties near %d: %v", user.TelegramID, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var properties []models.PropertyWithDistance
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return properties, nil
}

// ListActiveByIDs returns the active listings among the given ids
func (r *PropertyRepository) ListActiveByIDs(ids []string) ([]models.Property, error) {
	if len(ids) == 0 {
		return []models.Property{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.collection().Find(ctx, bson.M{
		"id":        bson.M{"$in": ids},
		"is_active": true,
	})
	if err != nil {
		log.Printf("❌ Failed to list properties by ids: %v", err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return properties, nil
}
