package service

import (
	"errors"
	"log"
	"time"

	"roomie/pkg/dto"
	"roomie/pkg/models"
	"roomie/pkg/types/commontype"
)

// LikeService owns the like ledger and match detection. SubmitLike is the one
// entry point: insert the edge, then, for user likes, check for the reverse
// edge and settle the match record.
type LikeService struct {
	users   UserStore
	likes   LikeStore
	matches MatchStore
	emitter MatchEmitter
}

func NewLikeService(users UserStore, likes LikeStore, matches MatchStore, emitter MatchEmitter) *LikeService {
	return &LikeService{users: users, likes: likes, matches: matches, emitter: emitter}
}

// SubmitLike records the caller's interest in a user or property. Unlike the
// read paths, an unknown identity here is a hard error. A duplicate edge is
// rejected with ErrDuplicateLike and persists nothing.
func (s *LikeService) SubmitLike(telegramID int64, targetID, targetKind string) (*dto.LikeResultDTO, error) {
	if !commontype.IsValidTargetKind(targetKind) {
		return nil, commontype.NewValidationError("target_type", "must be \"user\" or \"property\"")
	}
	if targetID == "" {
		return nil, commontype.NewValidationError("target_id", "must not be empty")
	}

	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, commontype.ErrNotFound
	}

	if targetKind == commontype.TargetKindUser && targetID == user.ID {
		return nil, commontype.NewValidationError("target_id", "cannot like yourself")
	}

	like, err := s.likes.Insert(models.Like{
		SourceID:   user.ID,
		TargetID:   targetID,
		TargetKind: targetKind,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	result := &dto.LikeResultDTO{LikeID: like.ID}

	if targetKind == commontype.TargetKindUser {
		match, created, err := s.detect(user.ID, targetID)
		if err != nil {
			return nil, err
		}
		if match != nil {
			result.MatchID = match.ID
			result.IsMatch = true
			if created {
				s.emitMatchCreated(match)
			}
		}
	}

	return result, nil
}

// detect runs after a user-kind edge was persisted: if the reverse edge
// exists, create the match for the unordered pair or return the existing one.
// Losing the pair-key insert race is recovered here, never surfaced.
func (s *LikeService) detect(sourceID, targetID string) (*models.Match, bool, error) {
	reverse, err := s.likes.Has(targetID, sourceID, commontype.TargetKindUser)
	if err != nil {
		return nil, false, err
	}
	if !reverse {
		return nil, false, nil
	}

	match, err := s.matches.Insert(sourceID, targetID)
	if err != nil {
		if errors.Is(err, commontype.ErrMatchExists) {
			existing, getErr := s.matches.GetByPairKey(models.MatchPairKey(sourceID, targetID))
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return match, true, nil
}

func (s *LikeService) emitMatchCreated(match *models.Match) {
	if s.emitter == nil {
		return
	}

	event := dto.MatchEventDTO{
		MatchID:   match.ID,
		UserA:     match.UserA,
		UserB:     match.UserB,
		CreatedAt: match.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := s.emitter.PublishMatchCreated(event); err != nil {
		// The match itself is committed; a lost event is the notifier's
		// problem to reconcile, not a reason to fail the like.
		log.Printf("Failed to publish match created event for match %d: %v", match.ID, err)
	}
}
