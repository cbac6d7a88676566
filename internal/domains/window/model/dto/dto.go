package dto

import (
	"time"

	"guestroom/internal/domains/window/model"
	"guestroom/shared"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	gModel "guestroom/shared/model"
	"guestroom/shared/timezone"

	"github.com/google/uuid"
)

type DeclareWindowRequest struct {
	FromDate             string  `json:"from_date"              validate:"required,dateonly"`
	ToDate               string  `json:"to_date"                validate:"required,dateonly"`
	FromTime             string  `json:"from_time"              validate:"required,clock"`
	ToTime               string  `json:"to_time"                validate:"required,clock"`
	RentAmountPerDay     float64 `json:"rent_amount_per_day"    validate:"required,gt=0"`
	MinimumBookingPeriod int     `json:"minimum_booking_period" validate:"required,min=1"`
	MaximumBookingPeriod int     `json:"maximum_booking_period" validate:"required,gtefield=MinimumBookingPeriod"`
}

func (c *DeclareWindowRequest) ToModel(roomID, houseID, ownerID, user string) (model.Window, error) {
	fromDate, err := time.Parse(constant.DateOnlyFormat, c.FromDate)
	if err != nil {
		return model.Window{}, err
	}

	toDate, err := time.Parse(constant.DateOnlyFormat, c.ToDate)
	if err != nil {
		return model.Window{}, err
	}

	fromTime, err := time.Parse(constant.ClockFormat, c.FromTime)
	if err != nil {
		return model.Window{}, err
	}

	toTime, err := time.Parse(constant.ClockFormat, c.ToTime)
	if err != nil {
		return model.Window{}, err
	}

	return model.Window{
		ID:                   uuid.NewString(),
		RoomID:               roomID,
		HouseID:              houseID,
		OwnerID:              ownerID,
		FromDate:             fromDate,
		ToDate:               toDate,
		FromTime:             fromTime,
		ToTime:               toTime,
		RentAmountPerDay:     c.RentAmountPerDay,
		MinimumBookingPeriod: c.MinimumBookingPeriod,
		MaximumBookingPeriod: c.MaximumBookingPeriod,
		Available:            true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type WindowResponse struct {
	ID                   string  `json:"id"`
	RoomID               string  `json:"room_id"`
	HouseID              string  `json:"house_id"`
	OwnerID              string  `json:"owner_id"`
	FromDate             string  `json:"from_date"`
	ToDate               string  `json:"to_date"`
	FromTime             string  `json:"from_time"`
	ToTime               string  `json:"to_time"`
	RentAmountPerDay     float64 `json:"rent_amount_per_day"`
	MinimumBookingPeriod int     `json:"minimum_booking_period"`
	MaximumBookingPeriod int     `json:"maximum_booking_period"`
	Available            bool    `json:"available"`
	gDto.Metadata
}

func (r *WindowResponse) FromModel(model model.Window) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.HouseID = model.HouseID
	r.OwnerID = model.OwnerID
	r.FromDate = model.FromDate.Format(constant.DateOnlyFormat)
	r.ToDate = model.ToDate.Format(constant.DateOnlyFormat)
	r.FromTime = model.FromTime.Format(constant.ClockFormat)
	r.ToTime = model.ToTime.Format(constant.ClockFormat)
	r.RentAmountPerDay = model.RentAmountPerDay
	r.MinimumBookingPeriod = model.MinimumBookingPeriod
	r.MaximumBookingPeriod = model.MaximumBookingPeriod
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetWindowsResponse struct {
	Windows   []WindowResponse `json:"booking_windows"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetWindowsResponse) FromModels(models []model.Window, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Windows = make([]WindowResponse, len(models))
	for i, mod := range models {
		r.Windows[i].FromModel(mod)
	}
}
