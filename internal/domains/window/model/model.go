package model

import (
	"time"

	"guestroom/shared/model"
)

const (
	TableName  = "room_booking_windows"
	EntityName = "window"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldHouseID   = "house_id"
	FieldOwnerID   = "owner_id"
	FieldFromDate  = "from_date"
	FieldToDate    = "to_date"
	FieldFromTime  = "from_time"
	FieldToTime    = "to_time"
	FieldRent      = "rent_amount_per_day"
	FieldMinPeriod = "minimum_booking_period"
	FieldMaxPeriod = "maximum_booking_period"
	FieldAvailable = "available"
)

// Window is an owner-declared offering period for a room. Bookings made
// inside a window snapshot its rent and honor its stay-length bounds.
type Window struct {
	ID                   string    `db:"id"`
	RoomID               string    `db:"room_id"`
	HouseID              string    `db:"house_id"`
	OwnerID              string    `db:"owner_id"`
	FromDate             time.Time `db:"from_date"`
	ToDate               time.Time `db:"to_date"`
	FromTime             time.Time `db:"from_time"`
	ToTime               time.Time `db:"to_time"`
	RentAmountPerDay     float64   `db:"rent_amount_per_day"`
	MinimumBookingPeriod int       `db:"minimum_booking_period"`
	MaximumBookingPeriod int       `db:"maximum_booking_period"`
	Available            bool      `db:"available"`
	model.Metadata
}
