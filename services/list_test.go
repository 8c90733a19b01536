package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"hotel-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is the in-memory stand-in for the persistence collaborator.
// It counts saves so tests can assert exactly when writes happen.
type memStore struct {
	data  map[string]string
	saves int
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (s *memStore) Load(name string) (string, bool, error) {
	payload, ok := s.data[name]
	return payload, ok, nil
}

func (s *memStore) Save(name, payload string) error {
	s.saves++
	s.data[name] = payload
	return nil
}

func newUserList(store *memStore) *List[models.User] {
	return NewList(store, ListConfig[models.User]{
		Collection: "users",
		PageSize:   5,
		Required:   []string{"name", "email"},
		Matches: func(u models.User, q string) bool {
			return ContainsFold(u.Name, q) || ContainsFold(u.Email, q)
		},
	})
}

func addUsers(t *testing.T, l *List[models.User], n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := l.Create(map[string]any{
			"name":  fmt.Sprintf("User %02d", i),
			"email": fmt.Sprintf("user%02d@example.com", i),
		})
		require.NoError(t, err)
	}
}

func TestList_ViewIsIdempotent(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 7)
	l.SetSearch("user")
	l.SetSort("name")

	first := l.View()
	second := l.View()

	assert.Equal(t, first, second)
}

func TestList_CreateAssignsSequentialIDs(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 3)

	view := l.View()
	require.Len(t, view.Items, 3)
	for i, u := range view.Items {
		assert.Equal(t, i+1, u.ID)
	}
}

func TestList_IDNeverCollidesAfterDeleteAndAdd(t *testing.T) {
	// Non-monotonic ids, as left behind by a manual data edit.
	store := newMemStore()
	store.data["users"] = `[{"id":5,"name":"Eve","email":"eve@example.com"},{"id":2,"name":"Bob","email":"bob@example.com"}]`

	l := newUserList(store)
	require.NoError(t, l.Remove(2))

	created, err := l.Create(map[string]any{"name": "Cara", "email": "cara@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	seen := map[int]bool{}
	for _, u := range l.View().Items {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

func TestList_DeleteLastThenAdd(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 2)

	require.NoError(t, l.Remove(2))
	created, err := l.Create(map[string]any{"name": "New", "email": "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	l2 := newUserList(newMemStore())
	addUsers(t, l2, 2)
	require.NoError(t, l2.Remove(1))
	created2, err := l2.Create(map[string]any{"name": "New", "email": "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, 3, created2.ID)
}

func TestList_RequiredFieldsRejectedBeforePersist(t *testing.T) {
	store := newMemStore()
	l := newUserList(store)

	_, err := l.Create(map[string]any{"name": "No Email"})

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"email"}, vErr.Missing)
	assert.Empty(t, l.View().Items)
	assert.Zero(t, store.saves, "a rejected add must not write")
}

func TestList_BlankStringCountsAsMissing(t *testing.T) {
	l := newUserList(newMemStore())

	_, err := l.Create(map[string]any{"name": "   ", "email": nil})

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.ElementsMatch(t, []string{"name", "email"}, vErr.Missing)
}

func TestList_UpdateShallowMerges(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 1)

	updated, err := l.Update(1, map[string]any{"email": "changed@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "User 01", updated.Name)
	assert.Equal(t, "changed@example.com", updated.Email)
	assert.Equal(t, 1, updated.ID)
}

func TestList_UpdateIgnoresIDInPatch(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 1)

	updated, err := l.Update(1, map[string]any{"id": 99, "name": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestList_UpdateUnknownID(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 1)

	_, err := l.Update(42, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestList_RemoveAbsentIsNoop(t *testing.T) {
	store := newMemStore()
	l := newUserList(store)
	addUsers(t, l, 2)
	savesBefore := store.saves

	require.NoError(t, l.Remove(42))

	assert.Len(t, l.View().Items, 2)
	assert.Equal(t, savesBefore+1, store.saves, "remove persists even as a no-op")
}

func TestList_FilterCaseInsensitiveWithPaging(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 12)
	_, err := l.Create(map[string]any{"name": "Zelda", "email": "zelda@other.org"})
	require.NoError(t, err)

	l.SetSearch("EXAMPLE.COM")
	view := l.View()

	assert.Equal(t, 3, view.TotalPages)
	assert.Equal(t, 1, view.Page)
	require.Len(t, view.Items, 5)
	for _, u := range view.Items {
		assert.Contains(t, u.Email, "example.com")
	}
}

func TestList_PaginationBounds(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 12)

	view := l.View()
	assert.Equal(t, 3, view.TotalPages)

	l.SetPage(0)
	assert.Equal(t, 1, l.View().Page)

	l.SetPage(99)
	view = l.View()
	assert.Equal(t, 3, view.Page)
	assert.Len(t, view.Items, 2)
}

func TestList_EmptyCollectionStillOnePage(t *testing.T) {
	l := newUserList(newMemStore())

	view := l.View()
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, 1, view.Page)
	assert.Empty(t, view.Items)
}

func TestList_SearchResetsPage(t *testing.T) {
	l := newUserList(newMemStore())
	addUsers(t, l, 12)
	l.SetPage(3)

	l.SetSearch("user")
	assert.Equal(t, 1, l.View().Page)
}

func TestList_SortToggle(t *testing.T) {
	l := newUserList(newMemStore())
	_, err := l.Create(map[string]any{"name": "Bravo", "email": "b@example.com"})
	require.NoError(t, err)
	_, err = l.Create(map[string]any{"name": "Alpha", "email": "a@example.com"})
	require.NoError(t, err)

	l.SetSort("name")
	view := l.View()
	assert.Equal(t, "Alpha", view.Items[0].Name)

	// Second click on the same header: direction flips, field stays.
	l.SetSort("name")
	view = l.View()
	assert.Equal(t, "Bravo", view.Items[0].Name)
}

func TestList_SortByNumericField(t *testing.T) {
	store := newMemStore()
	store.data["users"] = `[{"id":3,"name":"c","email":"c@x"},{"id":1,"name":"a","email":"a@x"},{"id":2,"name":"b","email":"b@x"}]`
	l := newUserList(store)

	view := l.View()
	assert.Equal(t, []int{1, 2, 3}, []int{view.Items[0].ID, view.Items[1].ID, view.Items[2].ID})
}

func TestList_SortUnknownFieldKeepsOrder(t *testing.T) {
	store := newMemStore()
	store.data["users"] = `[{"id":3,"name":"c","email":"c@x"},{"id":1,"name":"a","email":"a@x"}]`
	l := newUserList(store)

	l.SetSort("nonexistent")
	view := l.View()
	assert.Equal(t, 3, view.Items[0].ID)
	assert.Equal(t, 1, view.Items[1].ID)
}

func TestList_DisplaySortDoesNotMutateOrder(t *testing.T) {
	store := newMemStore()
	l := newUserList(store)
	_, err := l.Create(map[string]any{"name": "Bravo", "email": "b@example.com"})
	require.NoError(t, err)
	_, err = l.Create(map[string]any{"name": "Alpha", "email": "a@example.com"})
	require.NoError(t, err)

	l.SetSort("name")
	_ = l.View()
	require.NoError(t, l.Remove(99)) // forces a persist of the underlying order

	var persisted []models.User
	require.NoError(t, json.Unmarshal([]byte(store.data["users"]), &persisted))
	assert.Equal(t, "Bravo", persisted[0].Name, "insertion order is canonical")
}

func TestList_RoundTripThroughStore(t *testing.T) {
	store := newMemStore()
	l := newUserList(store)
	addUsers(t, l, 4)

	reloaded := newUserList(store)
	assert.Equal(t, l.View(), reloaded.View())
}

func TestList_MalformedPayloadStartsEmpty(t *testing.T) {
	store := newMemStore()
	store.data["users"] = `{"this is": "not an array"`

	l := newUserList(store)
	assert.Empty(t, l.View().Items)
}

func TestList_OneSavePerMutation(t *testing.T) {
	store := newMemStore()
	l := newUserList(store)

	_, err := l.Create(map[string]any{"name": "A", "email": "a@x"})
	require.NoError(t, err)
	_, err = l.Update(1, map[string]any{"name": "B"})
	require.NoError(t, err)
	require.NoError(t, l.Remove(1))

	assert.Equal(t, 3, store.saves)
	_ = l.View()
	assert.Equal(t, 3, store.saves, "view must not write")
}
