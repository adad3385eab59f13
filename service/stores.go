package service

import (
	"roomie/pkg/dto"
	"roomie/pkg/models"
)

// Storage access is injected behind these interfaces; the repositories in
// repository/ are the production implementations, tests supply fakes.

type UserStore interface {
	GetByTelegramID(telegramID int64) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Insert(user models.User) error
	Update(telegramID int64, update dto.UserUpdateDTO) error
	FindUsersNear(user *models.User) ([]models.UserWithDistance, error)
}

type PropertyStore interface {
	FindPropertiesNear(user *models.User) ([]models.PropertyWithDistance, error)
	ListActiveByIDs(ids []string) ([]models.Property, error)
}

type LikeStore interface {
	Insert(like models.Like) (*models.Like, error)
	Has(sourceID, targetID, targetKind string) (bool, error)
	ListTargetIDs(sourceID, targetKind string) ([]string, error)
}

type MatchStore interface {
	Insert(userA, userB string) (*models.Match, error)
	GetByPairKey(pairKey string) (*models.Match, error)
	ListActiveByUser(userID string) ([]models.Match, error)
}

// MatchEmitter publishes match-created events for the notification collaborator
type MatchEmitter interface {
	PublishMatchCreated(event dto.MatchEventDTO) error
}
