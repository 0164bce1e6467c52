package dto

import (
	"dinevibe/internal/domains/restaurant/model"
	"dinevibe/shared"
	gDto "dinevibe/shared/dto"
	gModel "dinevibe/shared/model"
	"dinevibe/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRestaurantRequest struct {
	Name             string   `json:"name"              validate:"required,max=150"`
	Description      *string  `json:"description"       validate:"omitempty,max=2000"`
	Location         string   `json:"location"          validate:"required,max=150"`
	Cuisine          string   `json:"cuisine"           validate:"required,max=100"`
	PriceRange       *string  `json:"price_range"       validate:"omitempty,max=50"`
	Images           []string `json:"images"            validate:"omitempty,dive,url"`
	MenuImages       []string `json:"menu_images"       validate:"omitempty,dive,url"`
	Features         []string `json:"features"          validate:"omitempty,dive,max=100"`
	SeatingCapacity  int      `json:"seating_capacity"  validate:"omitempty,min=0"`
	BudgetMin        *int     `json:"budget_min"        validate:"omitempty,min=0"`
	BudgetMax        *int     `json:"budget_max"        validate:"omitempty,min=0,gtefield=BudgetMin"`
	ManagerName      *string  `json:"manager_name"      validate:"omitempty,max=100"`
	ManagerContact   *string  `json:"manager_contact"   validate:"omitempty,max=30"`
	OpeningHours     *string  `json:"opening_hours"     validate:"omitempty,max=200"`
	OffersDecoration bool     `json:"offers_decoration"`
}

// ToModel builds a restaurant owned by the calling user. New restaurants are
// always unapproved; approval has its own admin-gated path.
func (c *CreateRestaurantRequest) ToModel(ownerID string) model.Restaurant {
	return model.Restaurant{
		ID:               uuid.NewString(),
		OwnerID:          ownerID,
		Name:             c.Name,
		Description:      c.Description,
		Location:         c.Location,
		Cuisine:          c.Cuisine,
		PriceRange:       c.PriceRange,
		Images:           c.Images,
		MenuImages:       c.MenuImages,
		Features:         c.Features,
		SeatingCapacity:  c.SeatingCapacity,
		BudgetMin:        c.BudgetMin,
		BudgetMax:        c.BudgetMax,
		ManagerName:      c.ManagerName,
		ManagerContact:   c.ManagerContact,
		OpeningHours:     c.OpeningHours,
		OffersDecoration: c.OffersDecoration,
		IsApproved:       false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

// UpdateRestaurantRequest deliberately carries no approval field; the generic
// update path cannot touch is_approved.
type UpdateRestaurantRequest struct {
	Name             string         `db:"name"              json:"name"              validate:"omitempty,max=150"`
	Description      string         `db:"description"       json:"description"       validate:"omitempty,max=2000"`
	Location         string         `db:"location"          json:"location"          validate:"omitempty,max=150"`
	Cuisine          string         `db:"cuisine"           json:"cuisine"           validate:"omitempty,max=100"`
	PriceRange       string         `db:"price_range"       json:"price_range"       validate:"omitempty,max=50"`
	Images           pq.StringArray `db:"images"            json:"images"            validate:"omitempty,dive,url"`
	MenuImages       pq.StringArray `db:"menu_images"       json:"menu_images"       validate:"omitempty,dive,url"`
	Features         pq.StringArray `db:"features"          json:"features"          validate:"omitempty,dive,max=100"`
	SeatingCapacity  *int           `db:"seating_capacity"  json:"seating_capacity"  validate:"omitempty,min=0"`
	BudgetMin        *int           `db:"budget_min"        json:"budget_min"        validate:"omitempty,min=0"`
	BudgetMax        *int           `db:"budget_max"        json:"budget_max"        validate:"omitempty,min=0"`
	ManagerName      string         `db:"manager_name"      json:"manager_name"      validate:"omitempty,max=100"`
	ManagerContact   string         `db:"manager_contact"   json:"manager_contact"   validate:"omitempty,max=30"`
	OpeningHours     string         `db:"opening_hours"     json:"opening_hours"     validate:"omitempty,max=200"`
	OffersDecoration *bool          `db:"offers_decoration" json:"offers_decoration" validate:"omitempty"`
}

type UpdateApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type RecommendationRequest struct {
	Location        string `json:"location"         validate:"omitempty,max=150"`
	Budget          string `json:"budget"           validate:"omitempty,max=50"`
	GuestCount      int    `json:"guest_count"      validate:"omitempty,min=0"`
	NeedsDecoration bool   `json:"needs_decoration"`
}

type RestaurantResponse struct {
	ID               string   `json:"id"`
	OwnerID          string   `json:"owner_id"`
	Name             string   `json:"name"`
	Description      *string  `json:"description"`
	Location         string   `json:"location"`
	Cuisine          string   `json:"cuisine"`
	PriceRange       *string  `json:"price_range"`
	Images           []string `json:"images"`
	MenuImages       []string `json:"menu_images"`
	Features         []string `json:"features"`
	SeatingCapacity  int      `json:"seating_capacity"`
	BudgetMin        *int     `json:"budget_min"`
	BudgetMax        *int     `json:"budget_max"`
	ManagerName      *string  `json:"manager_name"`
	ManagerContact   *string  `json:"manager_contact"`
	OpeningHours     *string  `json:"opening_hours"`
	OffersDecoration bool     `json:"offers_decoration"`
	IsApproved       bool     `json:"is_approved"`
	gDto.Metadata
}

func (r *RestaurantResponse) FromModel(mod model.Restaurant) {
	r.ID = mod.ID
	r.OwnerID = mod.OwnerID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Location = mod.Location
	r.Cuisine = mod.Cuisine
	r.PriceRange = mod.PriceRange
	r.Images = mod.Images
	r.MenuImages = mod.MenuImages
	r.Features = mod.Features
	r.SeatingCapacity = mod.SeatingCapacity
	r.BudgetMin = mod.BudgetMin
	r.BudgetMax = mod.BudgetMax
	r.ManagerName = mod.ManagerName
	r.ManagerContact = mod.ManagerContact
	r.OpeningHours = mod.OpeningHours
	r.OffersDecoration = mod.OffersDecoration
	r.IsApproved = mod.IsApproved
	r.Metadata.FromModel(mod.Metadata)
}

type GetRestaurantsResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (g *GetRestaurantsResponse) FromModels(models []model.Restaurant, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Restaurants = make([]RestaurantResponse, len(models))
	for i, mod := range models {
		g.Restaurants[i].FromModel(mod)
	}
}

type PendingRestaurantResponse struct {
	RestaurantResponse
	OwnerName    *string `json:"owner_name"`
	OwnerEmail   string  `json:"owner_email"`
	OwnerContact *string `json:"owner_contact"`
}

func (p *PendingRestaurantResponse) FromModel(mod model.PendingRestaurant) {
	p.RestaurantResponse.FromModel(mod.Restaurant)
	p.OwnerName = mod.OwnerName
	p.OwnerEmail = mod.OwnerEmail
	p.OwnerContact = mod.OwnerContact
}

type GetPendingRestaurantsResponse struct {
	Restaurants []PendingRestaurantResponse `json:"restaurants"`
	TotalPage   int                         `json:"total_page"`
	TotalData   int                         `json:"total_data"`
}

func (g *GetPendingRestaurantsResponse) FromModels(models []model.PendingRestaurant, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Restaurants = make([]PendingRestaurantResponse, len(models))
	for i, mod := range models {
		g.Restaurants[i].FromModel(mod)
	}
}
