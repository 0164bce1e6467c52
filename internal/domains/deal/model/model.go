package model

import (
	"time"

	"dinevibe/shared/model"
)

const (
	TableName  = "deals"
	EntityName = "deal"

	FieldID                 = "id"
	FieldRestaurantID       = "restaurant_id"
	FieldTitle              = "title"
	FieldType               = "type"
	FieldValidFrom          = "valid_from"
	FieldValidUntil         = "valid_until"
	FieldDiscountPercentage = "discount_percentage"

	ClaimTableName  = "deal_claims"
	ClaimEntityName = "deal_claim"

	ClaimFieldID           = "id"
	ClaimFieldUserID       = "user_id"
	ClaimFieldDealID       = "deal_id"
	ClaimFieldRestaurantID = "restaurant_id"
	ClaimFieldStatus       = "status"
)

// Deal is a promotional offer attached to a restaurant. Deals live in their
// own table keyed by a server-generated id, so concurrent creations against
// the same restaurant never clobber each other.
type Deal struct {
	ID                 string    `db:"id"`
	RestaurantID       string    `db:"restaurant_id"`
	Title              string    `db:"title"`
	Description        *string   `db:"description"`
	Type               string    `db:"type"`
	ValidFrom          time.Time `db:"valid_from"`
	ValidUntil         time.Time `db:"valid_until"`
	Terms              *string   `db:"terms"`
	DiscountPercentage *int      `db:"discount_percentage"`
	Code               *string   `db:"code"`
	model.Metadata
}

type DealWithRestaurant struct {
	Deal
	RestaurantName string `db:"restaurant_name" table:"restaurants" column:"name"`
}

func (DealWithRestaurant) GetJoinQuery() string {
	return "JOIN restaurants ON restaurants.id = deals.restaurant_id"
}

// Claim records a user redeeming a deal. Repeat claims are allowed and every
// claim starts (and stays) active.
type Claim struct {
	ID           string `db:"id"`
	UserID       string `db:"user_id"`
	DealID       string `db:"deal_id"`
	RestaurantID string `db:"restaurant_id"`
	Status       string `db:"status"`
	model.Metadata
}

type ClaimedDeal struct {
	Claim
	DealTitle      string `db:"deal_title"      table:"deals"       column:"title"`
	DealType       string `db:"deal_type"       table:"deals"       column:"type"`
	RestaurantName string `db:"restaurant_name" table:"restaurants" column:"name"`
}

func (ClaimedDeal) GetJoinQuery() string {
	return "JOIN deals ON deals.id = deal_claims.deal_id JOIN restaurants ON restaurants.id = deal_claims.restaurant_id"
}
