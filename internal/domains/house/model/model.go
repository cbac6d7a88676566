package model

import (
	"guestroom/shared/model"
)

const (
	TableName  = "houses"
	EntityName = "house"

	FieldID         = "id"
	FieldOwnerID    = "owner_id"
	FieldName       = "name"
	FieldLocation   = "location"
	FieldCity       = "city"
	FieldState      = "state"
	FieldTotalRooms = "total_rooms"
	FieldAvailable  = "available"
)

type House struct {
	ID         string `db:"id"`
	OwnerID    string `db:"owner_id"`
	Name       string `db:"name"`
	Location   string `db:"location"`
	City       string `db:"city"`
	State      string `db:"state"`
	TotalRooms int    `db:"total_rooms"`
	Available  bool   `db:"available"`
	model.Metadata
}
