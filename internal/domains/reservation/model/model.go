package model

import (
	"time"

	"dinevibe/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRestaurantID = "restaurant_id"
	FieldGuestCount   = "guest_count"
	FieldLocation     = "location"
	FieldEventType    = "event_type"
	FieldBookingDate  = "booking_date"
	FieldStatus       = "status"
	FieldToken        = "token"
)

// Reservation is a booking request. RestaurantID is nullable: a request may
// target any restaurant matching the stated location and budget. The token is
// a human-shareable reference code, not an access credential.
type Reservation struct {
	ID                 string    `db:"id"`
	UserID             string    `db:"user_id"`
	RestaurantID       *string   `db:"restaurant_id"`
	GuestCount         int       `db:"guest_count"`
	Budget             *string   `db:"budget"`
	Location           *string   `db:"location"`
	EventType          string    `db:"event_type"`
	OptionalDish       *string   `db:"optional_dish"`
	OptionalDecoration bool      `db:"optional_decoration"`
	BookingDate        time.Time `db:"booking_date"`
	Status             string    `db:"status"`
	Token              string    `db:"token"`
	model.Metadata
}

// ReservationWithRestaurant decorates a reservation with the target restaurant
// for booking-history views. The join is LEFT so open requests survive it.
type ReservationWithRestaurant struct {
	Reservation
	RestaurantName     *string `db:"restaurant_name"     table:"restaurants" column:"name"`
	RestaurantLocation *string `db:"restaurant_location" table:"restaurants" column:"location"`
}

func (ReservationWithRestaurant) GetJoinQuery() string {
	return "LEFT JOIN restaurants ON restaurants.id = reservations.restaurant_id"
}
