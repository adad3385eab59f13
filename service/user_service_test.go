package service

import (
	"testing"

	"roomie/pkg/dto"
	"roomie/pkg/types/commontype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePayload() dto.UserCreateDTO {
	return dto.UserCreateDTO{
		TelegramID:    100,
		FirstName:     "Ivan",
		Age:           27,
		Gender:        "male",
		PriceRangeMin: 20000,
		PriceRangeMax: 40000,
		MetroStation:  "Arbatskaya",
		SearchRadius:  5,
		Latitude:      55.75,
		Longitude:     37.60,
	}
}

func TestRegisterSuccess(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	got, err := svc.Register(validCreatePayload())
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, 55.75, got.Latitude)
	assert.Equal(t, 37.60, got.Longitude)
	assert.False(t, got.IsLiked)

	stored, err := users.GetByTelegramID(100)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
	// GeoJSON point, [longitude, latitude]
	assert.Equal(t, []float64{37.60, 55.75}, stored.Location.Coordinates)
}

func TestRegisterValidationRejectsBeforeStore(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.UserCreateDTO)
	}{
		{"inverted budget", func(p *dto.UserCreateDTO) { p.PriceRangeMin = 500; p.PriceRangeMax = 100 }},
		{"negative budget", func(p *dto.UserCreateDTO) { p.PriceRangeMin = -1 }},
		{"zero radius", func(p *dto.UserCreateDTO) { p.SearchRadius = 0 }},
		{"negative radius", func(p *dto.UserCreateDTO) { p.SearchRadius = -3 }},
		{"latitude out of range", func(p *dto.UserCreateDTO) { p.Latitude = 91 }},
		{"longitude out of range", func(p *dto.UserCreateDTO) { p.Longitude = -181 }},
		{"missing first name", func(p *dto.UserCreateDTO) { p.FirstName = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := newFakeUserStore()
			svc := NewUserService(users)

			payload := validCreatePayload()
			tc.mutate(&payload)

			_, err := svc.Register(payload)
			var ve *commontype.ValidationError
			require.ErrorAs(t, err, &ve)

			stored, _ := users.GetByTelegramID(payload.TelegramID)
			assert.Nil(t, stored, "nothing may be persisted on validation failure")
		})
	}
}

func TestRegisterDuplicateIdentityRejected(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register(validCreatePayload())
	require.NoError(t, err)

	_, err = svc.Register(validCreatePayload())
	var ve *commontype.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGetByTelegramIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.GetByTelegramID(999)
	assert.ErrorIs(t, err, commontype.ErrNotFound)
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	_, err := svc.Register(validCreatePayload())
	require.NoError(t, err)

	radius := 10
	about := "looking for a quiet flatmate"
	got, err := svc.Update(100, dto.UserUpdateDTO{SearchRadius: &radius, About: &about})
	require.NoError(t, err)

	assert.Equal(t, 10, got.SearchRadius)
	assert.Equal(t, about, got.About)
	// Untouched fields keep their values.
	assert.Equal(t, 20000, got.PriceRangeMin)
	assert.Equal(t, "Arbatskaya", got.MetroStation)
}

func TestUpdateRejectsLoneCoordinate(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register(validCreatePayload())
	require.NoError(t, err)

	lat := 55.70
	_, err = svc.Update(100, dto.UserUpdateDTO{Latitude: &lat})
	var ve *commontype.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUpdateBudgetCheckedAgainstExistingHalf(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Register(validCreatePayload())
	require.NoError(t, err)

	// Raising min above the stored max must fail even though max is untouched.
	min := 50000
	_, err = svc.Update(100, dto.UserUpdateDTO{PriceRangeMin: &min})
	var ve *commontype.ValidationError
	require.ErrorAs(t, err, &ve)

	// Raising both together is fine.
	max := 60000
	got, err := svc.Update(100, dto.UserUpdateDTO{PriceRangeMin: &min, PriceRangeMax: &max})
	require.NoError(t, err)
	assert.Equal(t, 50000, got.PriceRangeMin)
	assert.Equal(t, 60000, got.PriceRangeMax)
}

func TestUpdateUnknownIdentity(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	radius := 10
	_, err := svc.Update(999, dto.UserUpdateDTO{SearchRadius: &radius})
	assert.ErrorIs(t, err, commontype.ErrNotFound)
}
