package dto

import (
	"time"

	"guestroom/internal/domains/booking/model"
	roomModel "guestroom/internal/domains/room/model"
	"guestroom/shared"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	gModel "guestroom/shared/model"
	"guestroom/shared/timezone"

	"github.com/google/uuid"
)

type BookRoomRequest struct {
	FromDate   string `json:"from_date"  validate:"required,dateonly"`
	ToDate     string `json:"to_date"    validate:"required,dateonly"`
	FromTime   string `json:"from_time"  validate:"required,clock"`
	ToTime     string `json:"to_time"    validate:"required,clock"`
	Location   string `json:"location"   validate:"omitempty,max=255"`
	Occupation string `json:"occupation" validate:"omitempty,max=100"`
}

// Stay parses the requested date and time range into a stay interval.
func (c *BookRoomRequest) Stay() (model.Stay, error) {
	fromDate, err := time.Parse(constant.DateOnlyFormat, c.FromDate)
	if err != nil {
		return model.Stay{}, err
	}

	toDate, err := time.Parse(constant.DateOnlyFormat, c.ToDate)
	if err != nil {
		return model.Stay{}, err
	}

	fromTime, err := time.Parse(constant.ClockFormat, c.FromTime)
	if err != nil {
		return model.Stay{}, err
	}

	toTime, err := time.Parse(constant.ClockFormat, c.ToTime)
	if err != nil {
		return model.Stay{}, err
	}

	return model.NewStay(fromDate, toDate, fromTime, toTime)
}

// ToModel builds a pending booking for the given room. Owner and house ids
// come from the room, the rent snapshot from the covering window, and the
// customer identity from the verified token. Status is always pending.
func (c *BookRoomRequest) ToModel(room roomModel.Room, stay model.Stay, rentPerDay float64, customerID, customerName string) model.Booking {
	return model.Booking{
		ID:               uuid.NewString(),
		RoomID:           room.ID,
		HouseID:          room.HouseID,
		OwnerID:          room.OwnerID,
		CustomerID:       customerID,
		CustomerName:     customerName,
		FromDate:         stay.FromDate,
		ToDate:           stay.ToDate,
		FromTime:         stay.FromTime,
		ToTime:           stay.ToTime,
		Location:         c.Location,
		Occupation:       c.Occupation,
		RentAmountPerDay: rentPerDay,
		Status:           model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type TransitionRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	FromDate  string `json:"from_date"`
	ToDate    string `json:"to_date"`
	FromTime  string `json:"from_time"`
	ToTime    string `json:"to_time"`
	Available bool   `json:"available"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	RoomID           string  `json:"room_id"`
	HouseID          string  `json:"house_id"`
	OwnerID          string  `json:"owner_id"`
	CustomerID       string  `json:"customer_id"`
	CustomerName     string  `json:"customer_name"`
	RoomName         string  `json:"room_name"`
	HouseName        string  `json:"house_name"`
	FromDate         string  `json:"from_date"`
	ToDate           string  `json:"to_date"`
	FromTime         string  `json:"from_time"`
	ToTime           string  `json:"to_time"`
	Location         string  `json:"location"`
	Occupation       string  `json:"occupation"`
	RentAmountPerDay float64 `json:"rent_amount_per_day"`
	TotalRent        float64 `json:"total_rent"`
	Status           string  `json:"status"`
	StatusReason     string  `json:"status_reason,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.HouseID = model.HouseID
	r.OwnerID = model.OwnerID
	r.CustomerID = model.CustomerID
	r.CustomerName = model.CustomerName
	r.RoomName = model.RoomName
	r.HouseName = model.HouseName
	r.FromDate = model.FromDate.Format(constant.DateOnlyFormat)
	r.ToDate = model.ToDate.Format(constant.DateOnlyFormat)
	r.FromTime = model.FromTime.Format(constant.ClockFormat)
	r.ToTime = model.ToTime.Format(constant.ClockFormat)
	r.Location = model.Location
	r.Occupation = model.Occupation
	r.RentAmountPerDay = model.RentAmountPerDay
	r.TotalRent = model.TotalRent()
	r.Status = model.Status.String()
	r.StatusReason = model.StatusReason
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to Kafka when a booking is created
// or changes status.
type BookingEvent struct {
	Event      string    `json:"event"`
	BookingID  string    `json:"booking_id"`
	RoomID     string    `json:"room_id"`
	OwnerID    string    `json:"owner_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)
