package repository

import (
	"errors"
	"fmt"
	"log"

	"roomie/pkg/models"
	"roomie/pkg/types/commontype"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) InitDB() error {
	if err := r.db.AutoMigrate(&models.Like{}); err != nil {
		log.Printf("❌ Failed to migrate likes table: %v", err)
		return err
	}
	return nil
}

// Insert persists a directed like edge. The unique (source, target, kind)
// index decides concurrent identical submissions: exactly one wins, the
// loser gets ErrDuplicateLike.
func (r *LikeRepository) Insert(like models.Like) (*models.Like, error) {
	if err := r.db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, commontype.ErrDuplicateLike
		}
		log.Printf("❌ Failed to insert like %s -> %s (%s): %v",
			like.SourceID, like.TargetID, like.TargetKind, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return &like, nil
}

// Has reports whether the directed edge exists. Pure read, never creates state.
func (r *LikeRepository) Has(sourceID, targetID, targetKind string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("source_id = ? AND target_id = ? AND target_kind = ?", sourceID, targetID, targetKind).
		Count(&count).Error
	if err != nil {
		log.Printf("❌ Failed to check like %s -> %s (%s): %v", sourceID, targetID, targetKind, err)
		return false, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return count > 0, nil
}

// ListTargetIDs returns every target the user liked for the given kind,
// consumed by projections for the is_liked annotation.
func (r *LikeRepository) ListTargetIDs(sourceID, targetKind string) ([]string, error) {
	var targetIDs []string
	err := r.db.Model(&models.Like{}).
		Where("source_id = ? AND target_kind = ?", sourceID, targetKind).
		Pluck("target_id", &targetIDs).Error
	if err != nil {
		log.Printf("❌ Failed to list likes of %s (%s): %v", sourceID, targetKind, err)
		return nil, fmt.Errorf("%w: %v", commontype.ErrStoreUnavailable, err)
	}
	return targetIDs, nil
}
