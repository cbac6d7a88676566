package model

import (
	"time"

	"guestroom/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "room_id"
	FieldHouseID      = "house_id"
	FieldOwnerID      = "owner_id"
	FieldCustomerID   = "customer_id"
	FieldCustomerName = "customer_name"
	FieldFromDate     = "from_date"
	FieldToDate       = "to_date"
	FieldFromTime     = "from_time"
	FieldToTime       = "to_time"
	FieldStatus       = "status"
	FieldStatusReason = "status_reason"
	FieldRent         = "rent_amount_per_day"
)

// Booking is a customer reservation of a room. Owner, house and room ids are
// derived from the room at creation time; bookings are never deleted, only
// moved through the status machine.
type Booking struct {
	ID               string    `db:"id"`
	RoomID           string    `db:"room_id"`
	HouseID          string    `db:"house_id"`
	OwnerID          string    `db:"owner_id"`
	CustomerID       string    `db:"customer_id"`
	CustomerName     string    `db:"customer_name"`
	FromDate         time.Time `db:"from_date"`
	ToDate           time.Time `db:"to_date"`
	FromTime         time.Time `db:"from_time"`
	ToTime           time.Time `db:"to_time"`
	Location         string    `db:"location"`
	Occupation       string    `db:"occupation"`
	RentAmountPerDay float64   `db:"rent_amount_per_day"`
	Status           Status    `db:"status"`
	StatusReason     string    `db:"status_reason"`
	RoomName         string    `db:"room_name"  table:"rooms"  column:"name"`
	HouseName        string    `db:"house_name" table:"houses" column:"name"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return `LEFT JOIN rooms ON rooms.id = room_bookings.room_id
		LEFT JOIN houses ON houses.id = room_bookings.house_id`
}

// Stay is the continuous interval this booking occupies.
func (b *Booking) Stay() Stay {
	return Stay{
		FromDate: b.FromDate,
		ToDate:   b.ToDate,
		FromTime: b.FromTime,
		ToTime:   b.ToTime,
	}
}

// TotalRent is the rent snapshot multiplied by the stay length in days.
func (b *Booking) TotalRent() float64 {
	stay := b.Stay()

	return b.RentAmountPerDay * float64(stay.Days())
}
