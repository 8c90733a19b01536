package models

// RecentBooking is a dashboard-only row. It is never persisted; the
// dashboard seeds a fixed set at startup.
type RecentBooking struct {
	ID       int    `json:"id"`
	Room     string `json:"room"`
	Guest    string `json:"guest"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}
