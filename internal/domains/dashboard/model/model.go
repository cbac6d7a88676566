package model

const (
	EntityName = "dashboard"
)

// Stats is the owner dashboard aggregate. Every figure derives from the
// bookings table, never from window availability flags.
type Stats struct {
	TotalHouses    int     `db:"total_houses"`
	TotalRooms     int     `db:"total_rooms"`
	ActiveBookings int     `db:"active_bookings"`
	TotalEarnings  float64 `db:"total_earnings"`
}
