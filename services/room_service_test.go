package services

import (
	"testing"

	"hotel-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomDraft(nama string) map[string]any {
	return map[string]any{
		"no":        "101",
		"nama":      nama,
		"kapasitas": 2,
		"kategori":  "Standard Room",
		"price":     250,
	}
}

func TestRoomService_CreateForcesPending(t *testing.T) {
	svc := NewRoomService(newMemStore())

	draft := roomDraft("Melati")
	draft["status"] = "approved" // must not stick
	room, err := svc.Create(draft)

	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusPending, room.Status)
}

func TestRoomService_StatusTransitionsUnrestricted(t *testing.T) {
	svc := NewRoomService(newMemStore())
	room, err := svc.Create(roomDraft("Melati"))
	require.NoError(t, err)

	room, err = svc.SetStatus(room.ID, "approved")
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusApproved, room.Status)

	// No workflow guard: approved may go straight back to pending.
	room, err = svc.SetStatus(room.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusPending, room.Status)

	room, err = svc.SetStatus(room.ID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusRejected, room.Status)
}

func TestRoomService_SetStatusValidation(t *testing.T) {
	svc := NewRoomService(newMemStore())
	room, err := svc.Create(roomDraft("Melati"))
	require.NoError(t, err)

	_, err = svc.SetStatus(room.ID, "archived")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	_, err = svc.SetStatus(42, "approved")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRoomService_StatusSurvivesRoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewRoomService(store)
	room, err := svc.Create(roomDraft("Melati"))
	require.NoError(t, err)
	_, err = svc.SetStatus(room.ID, "approved")
	require.NoError(t, err)

	reloaded := NewRoomService(store)
	items := reloaded.View().Items
	require.Len(t, items, 1)
	assert.Equal(t, models.RoomStatusApproved, items[0].Status)
}

func TestRoomService_SearchOnNamaOnly(t *testing.T) {
	svc := NewRoomService(newMemStore())
	_, err := svc.Create(roomDraft("Melati"))
	require.NoError(t, err)
	_, err = svc.Create(roomDraft("Anggrek"))
	require.NoError(t, err)

	svc.SetSearch("melati")
	assert.Len(t, svc.View().Items, 1)

	// kategori is not a searchable field on this screen
	svc.SetSearch("Standard")
	assert.Empty(t, svc.View().Items)
}
