package model

import (
	"guestroom/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldHouseID   = "house_id"
	FieldOwnerID   = "owner_id"
	FieldName      = "name"
	FieldFloor     = "floor"
	FieldRent      = "rent_amount_per_day"
	FieldAvailable = "available"
)

type Room struct {
	ID               string  `db:"id"`
	HouseID          string  `db:"house_id"`
	OwnerID          string  `db:"owner_id"`
	Name             string  `db:"name"`
	Floor            int     `db:"floor"`
	RentAmountPerDay float64 `db:"rent_amount_per_day"`
	Available        bool    `db:"available"`
	model.Metadata
}
