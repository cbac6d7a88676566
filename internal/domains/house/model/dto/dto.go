package dto

import (
	"guestroom/internal/domains/house/model"
	"guestroom/shared"
	gDto "guestroom/shared/dto"
	gModel "guestroom/shared/model"
	"guestroom/shared/timezone"

	"github.com/google/uuid"
)

type CreateHouseRequest struct {
	Name       string `json:"name"        validate:"required,max=100"`
	Location   string `json:"location"    validate:"required,max=255"`
	City       string `json:"city"        validate:"required,max=100"`
	State      string `json:"state"       validate:"required,max=100"`
	TotalRooms int    `json:"total_rooms" validate:"required,min=1"`
}

func (c *CreateHouseRequest) ToModel(ownerID, user string) model.House {
	return model.House{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		Name:       c.Name,
		Location:   c.Location,
		City:       c.City,
		State:      c.State,
		TotalRooms: c.TotalRooms,
		Available:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHouseRequest struct {
	Name       string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Location   string `db:"location"    json:"location"    validate:"omitempty,max=255"`
	City       string `db:"city"        json:"city"        validate:"omitempty,max=100"`
	State      string `db:"state"       json:"state"       validate:"omitempty,max=100"`
	TotalRooms int    `db:"total_rooms" json:"total_rooms" validate:"omitempty,min=1"`
	Available  *bool  `db:"available"   json:"available"   validate:"omitempty"`
}

type HouseResponse struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	City       string `json:"city"`
	State      string `json:"state"`
	TotalRooms int    `json:"total_rooms"`
	Available  bool   `json:"available"`
	gDto.Metadata
}

func (r *HouseResponse) FromModel(model model.House) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Name = model.Name
	r.Location = model.Location
	r.City = model.City
	r.State = model.State
	r.TotalRooms = model.TotalRooms
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetHousesResponse struct {
	Houses    []HouseResponse `json:"houses"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHousesResponse) FromModels(models []model.House, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Houses = make([]HouseResponse, len(models))
	for i, mod := range models {
		r.Houses[i].FromModel(mod)
	}
}
