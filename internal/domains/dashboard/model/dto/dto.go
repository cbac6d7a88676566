package dto

import (
	bookingModel "guestroom/internal/domains/booking/model"
	bookingDto "guestroom/internal/domains/booking/model/dto"
	"guestroom/internal/domains/dashboard/model"
)

type DashboardResponse struct {
	OwnerID        string                       `json:"owner_id"`
	TotalHouses    int                          `json:"total_houses"`
	TotalRooms     int                          `json:"total_rooms"`
	ActiveBookings int                          `json:"active_bookings"`
	TotalEarnings  float64                      `json:"total_earnings"`
	RecentPending  []bookingDto.BookingResponse `json:"recent_pending_bookings"`
}

func (r *DashboardResponse) FromModels(ownerID string, stats model.Stats, pending []bookingModel.Booking) {
	r.OwnerID = ownerID
	r.TotalHouses = stats.TotalHouses
	r.TotalRooms = stats.TotalRooms
	r.ActiveBookings = stats.ActiveBookings
	r.TotalEarnings = stats.TotalEarnings

	r.RecentPending = make([]bookingDto.BookingResponse, len(pending))
	for i, mod := range pending {
		r.RecentPending[i].FromModel(mod)
	}
}
