package service

import (
	"time"

	"roomie/pkg/dto"
	"roomie/pkg/models"
	"roomie/pkg/types/commontype"

	"github.com/google/uuid"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates the profile for a new identity. Validation happens before
// any store interaction; a second profile for the same telegram id is rejected.
func (s *UserService) Register(payload dto.UserCreateDTO) (*dto.UserDTO, error) {
	if err := validateBudget(payload.PriceRangeMin, payload.PriceRangeMax); err != nil {
		return nil, err
	}
	if err := validateRadius(payload.SearchRadius); err != nil {
		return nil, err
	}
	if err := validateCoordinates(payload.Latitude, payload.Longitude); err != nil {
		return nil, err
	}
	if payload.FirstName == "" {
		return nil, commontype.NewValidationError("first_name", "must not be empty")
	}

	existing, err := s.users.GetByTelegramID(payload.TelegramID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, commontype.NewValidationError("telegram_id", "profile already exists")
	}

	user := models.User{
		ID:              uuid.NewString(),
		TelegramID:      payload.TelegramID,
		Username:        payload.Username,
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		ProfilePhotoURL: payload.ProfilePhotoURL,
		Age:             payload.Age,
		Gender:          payload.Gender,
		About:           payload.About,
		PriceRangeMin:   payload.PriceRangeMin,
		PriceRangeMax:   payload.PriceRangeMax,
		MetroStation:    payload.MetroStation,
		SearchRadius:    payload.SearchRadius,
		Location:        models.NewGeoPoint(payload.Longitude, payload.Latitude),
		CreatedAt:       time.Now().UTC(),
		IsActive:        true,
	}

	if err := s.users.Insert(user); err != nil {
		return nil, err
	}

	view := toUserDTO(user, nil)
	return &view, nil
}

// GetByTelegramID returns the caller's own profile view
func (s *UserService) GetByTelegramID(telegramID int64) (*dto.UserDTO, error) {
	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, commontype.ErrNotFound
	}

	view := toUserDTO(*user, nil)
	return &view, nil
}

// Update applies a partial update: only supplied fields change, and every
// supplied field is validated before any store write.
func (s *UserService) Update(telegramID int64, update dto.UserUpdateDTO) (*dto.UserDTO, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	user, err := s.users.GetByTelegramID(telegramID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, commontype.ErrNotFound
	}

	// Budget bounds must stay ordered against the half that is not changing
	min, max := user.PriceRangeMin, user.PriceRangeMax
	if update.PriceRangeMin != nil {
		min = *update.PriceRangeMin
	}
	if update.PriceRangeMax != nil {
		max = *update.PriceRangeMax
	}
	if err := validateBudget(min, max); err != nil {
		return nil, err
	}

	if err := s.users.Update(telegramID, update); err != nil {
		return nil, err
	}

	return s.GetByTelegramID(telegramID)
}

func validateBudget(min, max int) error {
	if min < 0 {
		return commontype.NewValidationError("price_range_min", "must be non-negative")
	}
	if max < 0 {
		return commontype.NewValidationError("price_range_max", "must be non-negative")
	}
	if min > max {
		return commontype.NewValidationError("price_range", "min must not exceed max")
	}
	return nil
}

func validateRadius(radius int) error {
	if radius <= 0 {
		return commontype.NewValidationError("search_radius", "must be positive")
	}
	return nil
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < commontype.LatitudeMin || latitude > commontype.LatitudeMax {
		return commontype.NewValidationError("latitude", "out of range")
	}
	if longitude < commontype.LongitudeMin || longitude > commontype.LongitudeMax {
		return commontype.NewValidationError("longitude", "out of range")
	}
	return nil
}

func validateUpdate(update dto.UserUpdateDTO) error {
	if update.SearchRadius != nil {
		if err := validateRadius(*update.SearchRadius); err != nil {
			return err
		}
	}
	if (update.Latitude == nil) != (update.Longitude == nil) {
		return commontype.NewValidationError("location", "latitude and longitude must be supplied together")
	}
	if update.Latitude != nil {
		if err := validateCoordinates(*update.Latitude, *update.Longitude); err != nil {
			return err
		}
	}
	return nil
}
