package service

import (
	"roomie/pkg/dto"
	"roomie/pkg/models"
	"roomie/pkg/types/commontype"

	"github.com/samber/lo"
)

// DiscoveryService answers proximity queries: listings in budget and radius,
// match candidates with symmetric reachability, confirmed matches and liked
// listings. It only reads; the like ledger is consulted for annotation.
type DiscoveryService struct {
	users      UserStore
	properties PropertyStore
	likes      LikeStore
	matches    MatchStore
}

func NewDiscoveryService(users UserStore, properties PropertyStore, likes LikeStore, matches MatchStore) *DiscoveryService {
	return &DiscoveryService{users: users, properties: properties, likes: likes, matches: matches}
}

// FindPropertiesNear returns active listings inside the caller's radius and
// budget band. An unknown identity yields an empty set, not an error.
func (s *DiscoveryService) FindPropertiesNear(telegramID int64) ([]dto.PropertyDTO, error) {
	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []dto.PropertyDTO{}, nil
	}

	likedIDs, err := s.likes.ListTargetIDs(user.ID, commontype.TargetKindProperty)
	if err != nil {
		return nil, err
	}
	liked := likedSet(likedIDs)

	properties, err := s.properties.FindPropertiesNear(user)
	if err != nil {
		return nil, err
	}

	return lo.Map(properties, func(p models.PropertyWithDistance, _ int) dto.PropertyDTO {
		return toPropertyDTO(p.Property, liked)
	}), nil
}

// FindCandidates returns potential roommate matches: active users inside the
// caller's radius with overlapping budgets, reduced to those whose own radius
// reaches back to the caller.
func (s *DiscoveryService) FindCandidates(telegramID int64) ([]dto.UserDTO, error) {
	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []dto.UserDTO{}, nil
	}

	likedIDs, err := s.likes.ListTargetIDs(user.ID, commontype.TargetKindUser)
	if err != nil {
		return nil, err
	}
	liked := likedSet(likedIDs)

	candidates, err := s.users.FindUsersNear(user)
	if err != nil {
		return nil, err
	}

	eligible := filterCandidates(user, candidates)

	return lo.Map(eligible, func(c models.UserWithDistance, _ int) dto.UserDTO {
		return toUserDTO(c.User, liked)
	}), nil
}

// filterCandidates applies the matching policy on top of the raw proximity
// set: budget bands must intersect (touching at one point counts) and the
// candidate must be reciprocally reachable.
func filterCandidates(user *models.User, candidates []models.UserWithDistance) []models.UserWithDistance {
	return lo.Filter(candidates, func(c models.UserWithDistance, _ int) bool {
		return budgetOverlaps(user, &c.User) && isReciprocal(c)
	})
}

// budgetOverlaps is the standard interval-intersection test on the two
// acceptable price bands.
func budgetOverlaps(a, b *models.User) bool {
	return a.PriceRangeMin <= b.PriceRangeMax && b.PriceRangeMin <= a.PriceRangeMax
}

// isReciprocal keeps a candidate only if it would also discover the caller
// within its own radius. The geo stage's distance is reused for the reverse
// test: spherical distance is symmetric, so no second query is needed. A
// candidate without a usable radius fails the test, never counts as infinite.
func isReciprocal(c models.UserWithDistance) bool {
	if c.SearchRadius <= 0 {
		return false
	}
	return c.Distance <= float64(c.SearchRadius)*commontype.MetersPerKilometer
}

// GetMatches returns the partner profile views of the caller's confirmed,
// still-active matches. Unknown identity yields an empty set.
func (s *DiscoveryService) GetMatches(telegramID int64) ([]dto.UserDTO, error) {
	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []dto.UserDTO{}, nil
	}

	matches, err := s.matches.ListActiveByUser(user.ID)
	if err != nil {
		return nil, err
	}

	likedIDs, err := s.likes.ListTargetIDs(user.ID, commontype.TargetKindUser)
	if err != nil {
		return nil, err
	}
	liked := likedSet(likedIDs)

	views := make([]dto.UserDTO, 0, len(matches))
	for _, match := range matches {
		partner, err := s.users.GetByID(match.Partner(user.ID))
		if err != nil {
			return nil, err
		}
		if partner == nil {
			continue
		}
		views = append(views, toUserDTO(*partner, liked))
	}

	return views, nil
}

// GetLikedProperties returns the still-active listings the caller liked
func (s *DiscoveryService) GetLikedProperties(telegramID int64) ([]dto.PropertyDTO, error) {
	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []dto.PropertyDTO{}, nil
	}

	likedIDs, err := s.likes.ListTargetIDs(user.ID, commontype.TargetKindProperty)
	if err != nil {
		return nil, err
	}
	if len(likedIDs) == 0 {
		return []dto.PropertyDTO{}, nil
	}

	properties, err := s.properties.ListActiveByIDs(likedIDs)
	if err != nil {
		return nil, err
	}

	liked := likedSet(likedIDs)
	return lo.Map(properties, func(p models.Property, _ int) dto.PropertyDTO {
		return toPropertyDTO(p, liked)
	}), nil
}
