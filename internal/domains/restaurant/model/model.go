package model

import (
	"dinevibe/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "restaurants"
	EntityName = "restaurant"

	FieldID               = "id"
	FieldOwnerID          = "owner_id"
	FieldName             = "name"
	FieldDescription      = "description"
	FieldLocation         = "location"
	FieldCuisine          = "cuisine"
	FieldPriceRange       = "price_range"
	FieldImages           = "images"
	FieldMenuImages       = "menu_images"
	FieldFeatures         = "features"
	FieldSeatingCapacity  = "seating_capacity"
	FieldBudgetMin        = "budget_min"
	FieldBudgetMax        = "budget_max"
	FieldManagerName      = "manager_name"
	FieldManagerContact   = "manager_contact"
	FieldOpeningHours     = "opening_hours"
	FieldOffersDecoration = "offers_decoration"
	FieldIsApproved       = "is_approved"
)

// Restaurant is a venue registered by an owner. It stays invisible to public
// listing and search queries until an admin flips IsApproved.
type Restaurant struct {
	ID               string         `db:"id"`
	OwnerID          string         `db:"owner_id"`
	Name             string         `db:"name"`
	Description      *string        `db:"description"`
	Location         string         `db:"location"`
	Cuisine          string         `db:"cuisine"`
	PriceRange       *string        `db:"price_range"`
	Images           pq.StringArray `db:"images"`
	MenuImages       pq.StringArray `db:"menu_images"`
	Features         pq.StringArray `db:"features"`
	SeatingCapacity  int            `db:"seating_capacity"`
	BudgetMin        *int           `db:"budget_min"`
	BudgetMax        *int           `db:"budget_max"`
	ManagerName      *string        `db:"manager_name"`
	ManagerContact   *string        `db:"manager_contact"`
	OpeningHours     *string        `db:"opening_hours"`
	OffersDecoration bool           `db:"offers_decoration"`
	IsApproved       bool           `db:"is_approved"`
	model.Metadata
}

// HasBudgetRange reports whether both budget bounds are stored.
func (r *Restaurant) HasBudgetRange() bool {
	return r.BudgetMin != nil && r.BudgetMax != nil
}

// PendingRestaurant decorates a restaurant with its owner's profile for the
// admin review queue.
type PendingRestaurant struct {
	Restaurant
	OwnerName    *string `db:"owner_name"    table:"profiles" column:"name"`
	OwnerEmail   string  `db:"owner_email"   table:"profiles" column:"email"`
	OwnerContact *string `db:"owner_contact" table:"profiles" column:"contact_number"`
}

func (PendingRestaurant) GetJoinQuery() string {
	return "JOIN profiles ON profiles.id = restaurants.owner_id"
}
