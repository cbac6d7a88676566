package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"guestroom/internal/domains/booking/model"
	"guestroom/internal/domains/booking/model/dto"
	roomModel "guestroom/internal/domains/room/model"
)

func TestBookRoomRequest_Stay(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.BookRoomRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: dto.BookRoomRequest{
				FromDate: "2026-06-10",
				ToDate:   "2026-06-15",
				FromTime: "14:00",
				ToTime:   "11:00",
			},
		},
		{
			name: "malformed date",
			req: dto.BookRoomRequest{
				FromDate: "June 10th",
				ToDate:   "2026-06-15",
				FromTime: "14:00",
				ToTime:   "11:00",
			},
			wantErr: true,
		},
		{
			name: "malformed time",
			req: dto.BookRoomRequest{
				FromDate: "2026-06-10",
				ToDate:   "2026-06-15",
				FromTime: "2pm",
				ToTime:   "11:00",
			},
			wantErr: true,
		},
		{
			name: "stay ends before it starts",
			req: dto.BookRoomRequest{
				FromDate: "2026-06-15",
				ToDate:   "2026-06-10",
				FromTime: "14:00",
				ToTime:   "11:00",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay, err := tt.req.Stay()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.False(t, stay.End().Before(stay.Start()))
			}
		})
	}
}

func TestBookRoomRequest_ToModel(t *testing.T) {
	req := dto.BookRoomRequest{
		FromDate:   "2026-06-10",
		ToDate:     "2026-06-15",
		FromTime:   "14:00",
		ToTime:     "11:00",
		Location:   "Bandung",
		Occupation: "engineer",
	}

	stay, err := req.Stay()
	assert.NoError(t, err)

	room := roomModel.Room{
		ID:               "room-id",
		HouseID:          "house-id",
		OwnerID:          "owner-id",
		RentAmountPerDay: 150,
	}

	booking := req.ToModel(room, stay, 200, "customer-id", "Test Customer")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "room-id", booking.RoomID)
	assert.Equal(t, "house-id", booking.HouseID)
	assert.Equal(t, "owner-id", booking.OwnerID)
	assert.Equal(t, "customer-id", booking.CustomerID)
	assert.Equal(t, "Test Customer", booking.CustomerName)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, float64(200), booking.RentAmountPerDay)
	assert.Equal(t, "customer-id", booking.CreatedBy)
}

func TestBookingResponse_FromModel(t *testing.T) {
	req := dto.BookRoomRequest{
		FromDate: "2026-06-10",
		ToDate:   "2026-06-15",
		FromTime: "14:00",
		ToTime:   "11:00",
	}

	stay, err := req.Stay()
	assert.NoError(t, err)

	booking := req.ToModel(roomModel.Room{ID: "room-id"}, stay, 150, "customer-id", "Test Customer")
	booking.RoomName = "Front Room"
	booking.HouseName = "Hillside House"

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, booking.ID, res.ID)
	assert.Equal(t, "2026-06-10", res.FromDate)
	assert.Equal(t, "2026-06-15", res.ToDate)
	assert.Equal(t, "14:00", res.FromTime)
	assert.Equal(t, "11:00", res.ToTime)
	assert.Equal(t, "Front Room", res.RoomName)
	assert.Equal(t, "Hillside House", res.HouseName)
	assert.Equal(t, "pending", res.Status)

	// six inclusive days at 150 per day
	assert.Equal(t, float64(900), res.TotalRent)
}
