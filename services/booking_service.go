package services

import (
	"hotel-admin/config"
	"hotel-admin/models"
)

// BookingService binds the generic list to the bookings collection:
// search covers room and bookedBy, the screen shows the whole filtered
// set (no paging).
type BookingService struct {
	*List[models.Booking]
}

func NewBookingService(store config.Store) *BookingService {
	return &BookingService{
		List: NewList(store, ListConfig[models.Booking]{
			Collection: "bookings",
			Required:   []string{"room", "bookedDate", "bookedBy", "price"},
			Matches: func(b models.Booking, q string) bool {
				return ContainsFold(b.Room, q) || ContainsFold(b.BookedBy, q)
			},
		}),
	}
}
