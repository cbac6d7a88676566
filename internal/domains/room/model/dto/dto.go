package dto

import (
	"guestroom/internal/domains/room/model"
	"guestroom/shared"
	gDto "guestroom/shared/dto"
	gModel "guestroom/shared/model"
	"guestroom/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HouseID          string  `json:"house_id"            validate:"required"`
	Name             string  `json:"name"                validate:"required,max=100"`
	Floor            int     `json:"floor"               validate:"omitempty,min=0"`
	RentAmountPerDay float64 `json:"rent_amount_per_day" validate:"omitempty,min=0"`
}

func (c *CreateRoomRequest) ToModel(ownerID, user string) model.Room {
	return model.Room{
		ID:               uuid.NewString(),
		HouseID:          c.HouseID,
		OwnerID:          ownerID,
		Name:             c.Name,
		Floor:            c.Floor,
		RentAmountPerDay: c.RentAmountPerDay,
		Available:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomResponse struct {
	ID               string  `json:"id"`
	HouseID          string  `json:"house_id"`
	OwnerID          string  `json:"owner_id"`
	Name             string  `json:"name"`
	Floor            int     `json:"floor"`
	RentAmountPerDay float64 `json:"rent_amount_per_day"`
	Available        bool    `json:"available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HouseID = model.HouseID
	r.OwnerID = model.OwnerID
	r.Name = model.Name
	r.Floor = model.Floor
	r.RentAmountPerDay = model.RentAmountPerDay
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailableRoomsResponse lists the rooms of a house that are free for a
// requested date range.
type AvailableRoomsResponse struct {
	HouseID      string         `json:"house_id"`
	CheckInDate  string         `json:"check_in_date"`
	CheckOutDate string         `json:"check_out_date"`
	Rooms        []RoomResponse `json:"rooms"`
}

func (r *AvailableRoomsResponse) FromModels(houseID, checkIn, checkOut string, models []model.Room) {
	r.HouseID = houseID
	r.CheckInDate = checkIn
	r.CheckOutDate = checkOut

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
