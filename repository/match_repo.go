package repository

import (
	"errors"
	"fmt"
	"log"

	"roomie/pkg/models"
	"roomie/pkg/types/commontype"

	"gorm.io/gorm"
)

type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) InitDB() error {
	if err := r.db.AutoMigrate(&models.Match{}); err != nil {
		log.Printf("❌ Failed to migrate matches table: %v", err)
		return err
	}
	return nil
}

// Insert creates the match row for an unordered pair. The unique pair key
// makes the second of two concurrent detections lose with ErrMatchExists;
// callers recover by reading the winner's row back.
func (r *MatchRepository) Insert(userA, userB string) (*models.Match, error) {
	match := models.Match{
		UserA:    userA,
		UserB:    userB,
		PairKey:  models.MatchPairKey(userA, userB),
		IsActive: true,
	}
	if err := r.db.Create(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, commontype.ErrMatchExists
		}
		log.Printf("❌ Failed to insert match {%s, %s}: %v", userA, userB, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return &match, nil
}

// GetByPairKey reads the match for an unordered pair
func (r *MatchRepository) GetByPairKey(pairKey string) (*models.Match, error) {
	var match models.Match
	err := r.db.Where("pair_key = ?", pairKey).First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("❌ Failed to get match %s: %v", pairKey, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return &match, nil
}

// ListActiveByUser returns the user's confirmed matches
func (r *MatchRepository) ListActiveByUser(userID string) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.
		Where("(user_a = ? OR user_b = ?) AND is_active = ?", userID, userID, true).
		Find(&matches).Error
	if err != nil {
		log.Printf("❌ Failed to list matches of %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return matches, nil
}
