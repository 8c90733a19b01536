package models

type RoomStatus string

const (
	RoomStatusPending  RoomStatus = "pending"
	RoomStatusApproved RoomStatus = "approved"
	RoomStatusRejected RoomStatus = "rejected"
)

// ValidRoomStatus reports whether s is one of the three known states.
// Transitions between them are unrestricted; this only guards the
// vocabulary.
func ValidRoomStatus(s string) bool {
	switch RoomStatus(s) {
	case RoomStatusPending, RoomStatusApproved, RoomStatusRejected:
		return true
	}
	return false
}

// RoomCategories is the fixed category set offered by both the booking
// and the room forms.
var RoomCategories = []string{
	"Standard Room",
	"Superior Room",
	"Deluxe Room",
	"Twin Room",
	"Single Room",
}

// Room keeps the original (Indonesian) field names so persisted
// payloads stay compatible with what the admin screens already wrote.
type Room struct {
	ID        int        `json:"id"`
	No        string     `json:"no"`
	Nama      string     `json:"nama"`
	Kapasitas int        `json:"kapasitas"`
	Kategori  string     `json:"kategori"`
	Price     float64    `json:"price"`
	Status    RoomStatus `json:"status"`
}

func (r Room) EntityID() int { return r.ID }
