package dto

import (
	"time"

	"dinevibe/internal/domains/deal/model"
	"dinevibe/shared"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	gModel "dinevibe/shared/model"
	"dinevibe/shared/timezone"

	"github.com/google/uuid"
)

type CreateDealRequest struct {
	RestaurantID       string    `json:"restaurant_id"       validate:"required,uuid4"`
	Title              string    `json:"title"               validate:"required,max=150"`
	Description        *string   `json:"description"         validate:"omitempty,max=2000"`
	Type               string    `json:"type"                validate:"required,oneof=happy-hour discount voucher group"`
	ValidFrom          time.Time `json:"valid_from"          validate:"required"`
	ValidUntil         time.Time `json:"valid_until"         validate:"required,gtefield=ValidFrom"`
	Terms              *string   `json:"terms"               validate:"omitempty,max=2000"`
	DiscountPercentage *int      `json:"discount_percentage" validate:"omitempty,min=0,max=100"`
	Code               *string   `json:"code"                validate:"omitempty,max=50"`
}

func (c *CreateDealRequest) ToModel(user string) model.Deal {
	return model.Deal{
		ID:                 uuid.NewString(),
		RestaurantID:       c.RestaurantID,
		Title:              c.Title,
		Description:        c.Description,
		Type:               c.Type,
		ValidFrom:          c.ValidFrom,
		ValidUntil:         c.ValidUntil,
		Terms:              c.Terms,
		DiscountPercentage: c.DiscountPercentage,
		Code:               c.Code,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DealResponse struct {
	ID                 string  `json:"id"`
	RestaurantID       string  `json:"restaurant_id"`
	Title              string  `json:"title"`
	Description        *string `json:"description"`
	Type               string  `json:"type"`
	ValidFrom          string  `json:"valid_from"`
	ValidUntil         string  `json:"valid_until"`
	Terms              *string `json:"terms"`
	DiscountPercentage *int    `json:"discount_percentage"`
	Code               *string `json:"code"`
	gDto.Metadata
}

func (d *DealResponse) FromModel(mod model.Deal) {
	d.ID = mod.ID
	d.RestaurantID = mod.RestaurantID
	d.Title = mod.Title
	d.Description = mod.Description
	d.Type = mod.Type
	d.ValidFrom = timezone.Format(mod.ValidFrom, constant.DateFormat)
	d.ValidUntil = timezone.Format(mod.ValidUntil, constant.DateFormat)
	d.Terms = mod.Terms
	d.DiscountPercentage = mod.DiscountPercentage
	d.Code = mod.Code
	d.Metadata.FromModel(mod.Metadata)
}

type DealWithRestaurantResponse struct {
	DealResponse
	RestaurantName string `json:"restaurant_name"`
}

func (d *DealWithRestaurantResponse) FromModel(mod model.DealWithRestaurant) {
	d.DealResponse.FromModel(mod.Deal)
	d.RestaurantName = mod.RestaurantName
}

type GetDealsResponse struct {
	Deals     []DealWithRestaurantResponse `json:"deals"`
	TotalPage int                          `json:"total_page"`
	TotalData int                          `json:"total_data"`
}

func (g *GetDealsResponse) FromModels(models []model.DealWithRestaurant, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Deals = make([]DealWithRestaurantResponse, len(models))
	for i, mod := range models {
		g.Deals[i].FromModel(mod)
	}
}

type GetRestaurantDealsResponse struct {
	Deals     []DealResponse `json:"deals"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetRestaurantDealsResponse) FromModels(models []model.Deal, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Deals = make([]DealResponse, len(models))
	for i, mod := range models {
		g.Deals[i].FromModel(mod)
	}
}

type ClaimResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	DealID       string `json:"deal_id"`
	RestaurantID string `json:"restaurant_id"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (c *ClaimResponse) FromModel(mod model.Claim) {
	c.ID = mod.ID
	c.UserID = mod.UserID
	c.DealID = mod.DealID
	c.RestaurantID = mod.RestaurantID
	c.Status = mod.Status
	c.Metadata.FromModel(mod.Metadata)
}

type ClaimedDealResponse struct {
	ClaimResponse
	DealTitle      string `json:"deal_title"`
	DealType       string `json:"deal_type"`
	RestaurantName string `json:"restaurant_name"`
}

func (c *ClaimedDealResponse) FromModel(mod model.ClaimedDeal) {
	c.ClaimResponse.FromModel(mod.Claim)
	c.DealTitle = mod.DealTitle
	c.DealType = mod.DealType
	c.RestaurantName = mod.RestaurantName
}

type GetClaimedDealsResponse struct {
	Claims    []ClaimedDealResponse `json:"claims"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (g *GetClaimedDealsResponse) FromModels(models []model.ClaimedDeal, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Claims = make([]ClaimedDealResponse, len(models))
	for i, mod := range models {
		g.Claims[i].FromModel(mod)
	}
}
