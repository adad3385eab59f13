package service

import (
	"roomie/pkg/dto"
	"roomie/pkg/models"

	"github.com/samber/lo"
)

// likedSet indexes a user's liked target ids for constant-time annotation
func likedSet(ids []string) map[string]struct{} {
	return lo.SliceToMap(ids, func(id string) (string, struct{}) {
		return id, struct{}{}
	})
}

// toUserDTO projects a profile into its response view. Optional fields
// (username, last name, gender, about, photo) surface as absent when unset.
func toUserDTO(user models.User, liked map[string]struct{}) dto.UserDTO {
	_, isLiked := liked[user.ID]
	return dto.UserDTO{
		ID:              user.ID,
		Username:        user.Username,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfilePhotoURL: user.ProfilePhotoURL,
		Age:             user.Age,
		Gender:          user.Gender,
		About:           user.About,
		PriceRangeMin:   user.PriceRangeMin,
		PriceRangeMax:   user.PriceRangeMax,
		MetroStation:    user.MetroStation,
		SearchRadius:    user.SearchRadius,
		Latitude:        user.Location.Latitude(),
		Longitude:       user.Location.Longitude(),
		CreatedAt:       user.CreatedAt,
		IsLiked:         isLiked,
	}
}

func toPropertyDTO(property models.Property, liked map[string]struct{}) dto.PropertyDTO {
	_, isLiked := liked[property.ID]
	return dto.PropertyDTO{
		ID:           property.ID,
		Title:        property.Title,
		Description:  property.Description,
		Price:        property.Price,
		Address:      property.Address,
		MetroStation: property.MetroStation,
		Latitude:     property.Location.Latitude(),
		Longitude:    property.Location.Longitude(),
		Rooms:        property.Rooms,
		Area:         property.Area,
		Floor:        property.Floor,
		TotalFloors:  property.TotalFloors,
		PropertyType: property.PropertyType,
		Photos:       property.Photos,
		Amenities:    property.Amenities,
		CreatedAt:    property.CreatedAt,
		IsLiked:      isLiked,
	}
}
