package models

// Booking is one row of the booking management screen. BookedDate is
// kept as the calendar-date string the form submits (YYYY-MM-DD); it is
// displayed verbatim and never used in arithmetic.
type Booking struct {
	ID         int     `json:"id"`
	Room       string  `json:"room"`
	BookedDate string  `json:"bookedDate"`
	BookedBy   string  `json:"bookedBy"`
	Price      float64 `json:"price"`
}

func (b Booking) EntityID() int { return b.ID }
