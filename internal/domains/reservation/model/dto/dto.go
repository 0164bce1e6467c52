package dto

import (
	"time"

	"dinevibe/internal/domains/reservation/model"
	"dinevibe/shared"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	gModel "dinevibe/shared/model"
	"dinevibe/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RestaurantID       *string   `json:"restaurant_id"       validate:"omitempty,uuid4"`
	GuestCount         int       `json:"guest_count"         validate:"required,min=1"`
	Budget             *string   `json:"budget"              validate:"omitempty,max=50"`
	Location           *string   `json:"location"            validate:"omitempty,max=150"`
	EventType          string    `json:"event_type"          validate:"required,max=100"`
	OptionalDish       *string   `json:"optional_dish"       validate:"omitempty,max=200"`
	OptionalDecoration bool      `json:"optional_decoration"`
	BookingDate        time.Time `json:"booking_date"        validate:"required"`
}

// ToModel forces a fresh pending reservation with a newly issued booking token
// regardless of what the caller supplied.
func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	return model.Reservation{
		ID:                 uuid.NewString(),
		UserID:             user,
		RestaurantID:       c.RestaurantID,
		GuestCount:         c.GuestCount,
		Budget:             c.Budget,
		Location:           c.Location,
		EventType:          c.EventType,
		OptionalDish:       c.OptionalDish,
		OptionalDecoration: c.OptionalDecoration,
		BookingDate:        c.BookingDate,
		Status:             constant.ReservationStatusPending,
		Token:              shared.NewBookingToken(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type ReservationResponse struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"user_id"`
	RestaurantID       *string `json:"restaurant_id"`
	GuestCount         int     `json:"guest_count"`
	Budget             *string `json:"budget"`
	Location           *string `json:"location"`
	EventType          string  `json:"event_type"`
	OptionalDish       *string `json:"optional_dish"`
	OptionalDecoration bool    `json:"optional_decoration"`
	BookingDate        string  `json:"booking_date"`
	Status             string  `json:"status"`
	Token              string  `json:"token"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.RestaurantID = mod.RestaurantID
	r.GuestCount = mod.GuestCount
	r.Budget = mod.Budget
	r.Location = mod.Location
	r.EventType = mod.EventType
	r.OptionalDish = mod.OptionalDish
	r.OptionalDecoration = mod.OptionalDecoration
	r.BookingDate = timezone.Format(mod.BookingDate, constant.BookingDateFormat)
	r.Status = mod.Status
	r.Token = mod.Token
	r.Metadata.FromModel(mod.Metadata)
}

type ReservationWithRestaurantResponse struct {
	ReservationResponse
	RestaurantName     *string `json:"restaurant_name"`
	RestaurantLocation *string `json:"restaurant_location"`
}

func (r *ReservationWithRestaurantResponse) FromModel(mod model.ReservationWithRestaurant) {
	r.ReservationResponse.FromModel(mod.Reservation)
	r.RestaurantName = mod.RestaurantName
	r.RestaurantLocation = mod.RestaurantLocation
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (g *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		g.Reservations[i].FromModel(mod)
	}
}

type GetUserReservationsResponse struct {
	Reservations []ReservationWithRestaurantResponse `json:"reservations"`
	TotalPage    int                                 `json:"total_page"`
	TotalData    int                                 `json:"total_data"`
}

func (g *GetUserReservationsResponse) FromModels(models []model.ReservationWithRestaurant, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Reservations = make([]ReservationWithRestaurantResponse, len(models))
	for i, mod := range models {
		g.Reservations[i].FromModel(mod)
	}
}
