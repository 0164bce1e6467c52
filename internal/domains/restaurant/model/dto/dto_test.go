package dto_test

import (
	"testing"

	"dinevibe/internal/domains/restaurant/model"
	"dinevibe/internal/domains/restaurant/model/dto"
	gModel "dinevibe/shared/model"
	"dinevibe/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestCreateRestaurantRequest_ToModel(t *testing.T) {
	req := dto.CreateRestaurantRequest{
		Name:             "Warung Sate",
		Description:      strPtr("Charcoal grilled satay"),
		Location:         "Jakarta",
		Cuisine:          "Indonesian",
		PriceRange:       strPtr("$$"),
		Images:           []string{"https://cdn.example.com/1.jpg"},
		Features:         []string{"outdoor seating"},
		SeatingCapacity:  40,
		BudgetMin:        intPtr(100),
		BudgetMax:        intPtr(300),
		OffersDecoration: true,
	}

	ownerID := "owner-id"
	mod := req.ToModel(ownerID)

	assert.NotEmpty(t, mod.ID, "expected ID to be generated")
	assert.Equal(t, ownerID, mod.OwnerID)
	assert.Equal(t, req.Name, mod.Name)
	assert.Equal(t, req.Description, mod.Description)
	assert.Equal(t, req.Location, mod.Location)
	assert.Equal(t, req.Cuisine, mod.Cuisine)
	assert.Equal(t, req.BudgetMin, mod.BudgetMin)
	assert.Equal(t, req.BudgetMax, mod.BudgetMax)
	assert.True(t, mod.OffersDecoration)
	assert.False(t, mod.IsApproved, "new restaurants must start unapproved")
	assert.Equal(t, ownerID, mod.CreatedBy)
	assert.Equal(t, ownerID, mod.ModifiedBy)
	assert.False(t, mod.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, mod.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestRestaurantResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	restaurantModel := model.Restaurant{
		ID:              "restaurant-id",
		OwnerID:         "owner-id",
		Name:            "Warung Sate",
		Location:        "Jakarta",
		Cuisine:         "Indonesian",
		Images:          []string{"https://cdn.example.com/1.jpg"},
		SeatingCapacity: 40,
		BudgetMin:       intPtr(100),
		BudgetMax:       intPtr(300),
		IsApproved:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "owner-id",
			ModifiedBy: "owner-id",
		},
	}

	var response dto.RestaurantResponse
	response.FromModel(restaurantModel)

	assert.Equal(t, restaurantModel.ID, response.ID)
	assert.Equal(t, restaurantModel.OwnerID, response.OwnerID)
	assert.Equal(t, restaurantModel.Name, response.Name)
	assert.Equal(t, restaurantModel.Location, response.Location)
	assert.Equal(t, []string(restaurantModel.Images), response.Images)
	assert.Equal(t, restaurantModel.BudgetMin, response.BudgetMin)
	assert.Equal(t, restaurantModel.BudgetMax, response.BudgetMax)
	assert.True(t, response.IsApproved)
	assert.Equal(t, restaurantModel.CreatedBy, response.CreatedBy)
}

func TestGetRestaurantsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	restaurants := []model.Restaurant{
		{
			ID:       "restaurant-id-1",
			OwnerID:  "owner-id",
			Name:     "Warung Sate",
			Location: "Jakarta",
			Cuisine:  "Indonesian",
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "owner-id",
				ModifiedBy: "owner-id",
			},
		},
		{
			ID:       "restaurant-id-2",
			OwnerID:  "owner-id",
			Name:     "Pasta Corner",
			Location: "Bandung",
			Cuisine:  "Italian",
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "owner-id",
				ModifiedBy: "owner-id",
			},
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetRestaurantsResponse
	response.FromModels(restaurants, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Restaurants, len(restaurants))

	for i, restaurant := range response.Restaurants {
		assert.Equal(t, restaurants[i].ID, restaurant.ID)
		assert.Equal(t, restaurants[i].Name, restaurant.Name)
	}
}

func TestGetPendingRestaurantsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	pending := []model.PendingRestaurant{
		{
			Restaurant: model.Restaurant{
				ID:       "restaurant-id-1",
				OwnerID:  "owner-id",
				Name:     "Warung Sate",
				Location: "Jakarta",
				Cuisine:  "Indonesian",
				Metadata: gModel.Metadata{
					CreatedAt:  now,
					ModifiedAt: now,
					CreatedBy:  "owner-id",
					ModifiedBy: "owner-id",
				},
			},
			OwnerName:    strPtr("Owner Name"),
			OwnerEmail:   "owner@example.com",
			OwnerContact: strPtr("+62123456789"),
		},
	}

	var response dto.GetPendingRestaurantsResponse
	response.FromModels(pending, 1, 10)

	assert.Equal(t, 1, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Restaurants, 1)
	assert.Equal(t, "restaurant-id-1", response.Restaurants[0].ID)
	assert.Equal(t, "owner@example.com", response.Restaurants[0].OwnerEmail)
	assert.Equal(t, strPtr("Owner Name"), response.Restaurants[0].OwnerName)
	assert.False(t, response.Restaurants[0].IsApproved)
}
