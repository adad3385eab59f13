package service

import (
	"fmt"
	"sync"

	"roomie/pkg/dto"
	"roomie/pkg/models"
	"roomie/pkg/types/commontype"
)

// In-memory store fakes. The like and match fakes lock around their
// uniqueness checks so the concurrency tests exercise the same exactly-one
// guarantee the real unique indexes give.

type fakeUserStore struct {
	byTelegram map[int64]*models.User
	byID       map[string]*models.User
	near       []models.UserWithDistance
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{
		byTelegram: make(map[int64]*models.User),
		byID:       make(map[string]*models.User),
	}
	for i := range users {
		u := users[i]
		s.byTelegram[u.TelegramID] = &u
		s.byID[u.ID] = &u
	}
	return s
}

func (s *fakeUserStore) GetByTelegramID(telegramID int64) (*models.User, error) {
	return s.byTelegram[telegramID], nil
}

func (s *fakeUserStore) GetByID(id string) (*models.User, error) {
	return s.byID[id], nil
}

func (s *fakeUserStore) Insert(user models.User) error {
	if _, ok := s.byTelegram[user.TelegramID]; ok {
		return commontype.NewValidationError("telegram_id", "profile already exists")
	}
	s.byTelegram[user.TelegramID] = &user
	s.byID[user.ID] = &user
	return nil
}

func (s *fakeUserStore) Update(telegramID int64, update dto.UserUpdateDTO) error {
	u, ok := s.byTelegram[telegramID]
	if !ok {
		return nil
	}
	if update.Age != nil {
		u.Age = *update.Age
	}
	if update.Gender != nil {
		u.Gender = *update.Gender
	}
	if update.About != nil {
		u.About = *update.About
	}
	if update.PriceRangeMin != nil {
		u.PriceRangeMin = *update.PriceRangeMin
	}
	if update.PriceRangeMax != nil {
		u.PriceRangeMax = *update.PriceRangeMax
	}
	if update.MetroStation != nil {
		u.MetroStation = *update.MetroStation
	}
	if update.SearchRadius != nil {
		u.SearchRadius = *update.SearchRadius
	}
	if update.Latitude != nil && update.Longitude != nil {
		u.Location = models.NewGeoPoint(*update.Longitude, *update.Latitude)
	}
	return nil
}

func (s *fakeUserStore) FindUsersNear(user *models.User) ([]models.UserWithDistance, error) {
	return s.near, nil
}

type fakePropertyStore struct {
	near []models.PropertyWithDistance
	byID map[string]models.Property
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{byID: make(map[string]models.Property)}
}

func (s *fakePropertyStore) FindPropertiesNear(user *models.User) ([]models.PropertyWithDistance, error) {
	return s.near, nil
}

func (s *fakePropertyStore) ListActiveByIDs(ids []string) ([]models.Property, error) {
	var out []models.Property
	for _, id := range ids {
		if p, ok := s.byID[id]; ok && p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeLikeStore struct {
	mu    sync.Mutex
	edges map[string]models.Like
	next  int
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{edges: make(map[string]models.Like)}
}

func edgeKey(sourceID, targetID, kind string) string {
	return fmt.Sprintf("%s|%s|%s", sourceID, targetID, kind)
}

func (s *fakeLikeStore) Insert(like models.Like) (*models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := edgeKey(like.SourceID, like.TargetID, like.TargetKind)
	if _, ok := s.edges[key]; ok {
		return nil, commontype.ErrDuplicateLike
	}
	s.next++
	like.ID = s.next
	s.edges[key] = like
	return &like, nil
}

func (s *fakeLikeStore) Has(sourceID, targetID, targetKind string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.edges[edgeKey(sourceID, targetID, targetKind)]
	return ok, nil
}

func (s *fakeLikeStore) ListTargetIDs(sourceID, targetKind string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, like := range s.edges {
		if like.SourceID == sourceID && like.TargetKind == targetKind {
			out = append(out, like.TargetID)
		}
	}
	return out, nil
}

func (s *fakeLikeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.edges)
}

type fakeMatchStore struct {
	mu      sync.Mutex
	matches map[string]models.Match
	next    int
}

func newFakeMatchStore() *fakeMatchStore {
	return &fakeMatchStore{matches: make(map[string]models.Match)}
}

func (s *fakeMatchStore) Insert(userA, userB string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.MatchPairKey(userA, userB)
	if _, ok := s.matches[key]; ok {
		return nil, commontype.ErrMatchExists
	}
	s.next++
	match := models.Match{ID: s.next, UserA: userA, UserB: userB, PairKey: key, IsActive: true}
	s.matches[key] = match
	return &match, nil
}

func (s *fakeMatchStore) GetByPairKey(pairKey string) (*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.matches[pairKey]; ok {
		return &m, nil
	}
	return nil, nil
}

func (s *fakeMatchStore) ListActiveByUser(userID string) ([]models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Match
	for _, m := range s.matches {
		if m.IsActive && (m.UserA == userID || m.UserB == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMatchStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

type fakeEmitter struct {
	mu     sync.Mutex
	events []dto.MatchEventDTO
}

func (e *fakeEmitter) PublishMatchCreated(event dto.MatchEventDTO) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func (e *fakeEmitter) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events)
}
