package services

import (
	"hotel-admin/config"
	"hotel-admin/models"
)

// RoomService binds the generic list to the rooms collection. Search
// covers nama only; every new room starts pending.
type RoomService struct {
	*List[models.Room]
}

func NewRoomService(store config.Store) *RoomService {
	return &RoomService{
		List: NewList(store, ListConfig[models.Room]{
			Collection: "rooms",
			Required:   []string{"no", "nama", "kapasitas", "kategori", "price"},
			Matches: func(r models.Room, q string) bool {
				return ContainsFold(r.Nama, q)
			},
		}),
	}
}

// Create forces the initial status; whatever the draft carried is
// overwritten.
func (s *RoomService) Create(draft map[string]any) (models.Room, error) {
	merged := make(map[string]any, len(draft)+1)
	for k, v := range draft {
		merged[k] = v
	}
	merged["status"] = string(models.RoomStatusPending)
	return s.List.Create(merged)
}

// SetStatus moves a room to any of the three known states. There is no
// transition table: approved → pending is as legal as pending →
// approved.
func (s *RoomService) SetStatus(id int, status string) (models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return models.Room{}, models.ErrInvalidStatus
	}
	return s.Update(id, map[string]any{"status": status})
}
