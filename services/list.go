package services

import (
	"encoding/json"
	"fmt"
	"log"
	"reflect"
	"sort"
	"strings"
	"sync"

	"hotel-admin/config"
	"hotel-admin/models"
)

// Entity is anything with a stable integer id. The concrete types live
// in models.
type Entity interface {
	EntityID() int
}

// ListConfig binds a List to one collection: its persistence namespace,
// its searchable fields (as a match predicate), the fields a draft must
// carry, and the page size (0 = unpaged).
type ListConfig[T Entity] struct {
	Collection string
	PageSize   int
	Required   []string
	Matches    func(item T, query string) bool
}

// ListView is the display-ready projection: filter, then stable sort,
// then page window.
type ListView[T Entity] struct {
	Items      []T `json:"data"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// List owns one ordered collection and routes every mutation through
// the store: load once at construction, one whole-collection save per
// successful add/update/remove. Insertion order is canonical; sorting
// is display-only.
type List[T Entity] struct {
	mu    sync.Mutex
	store config.Store
	cfg   ListConfig[T]

	items    []T
	search   string
	sortKey  string
	sortDesc bool
	page     int
}

// NewList loads the collection from the store. A missing or unreadable
// payload degrades to an empty collection; nothing else validates the
// payload, so a schema-mismatched one decodes to zero-valued fields.
func NewList[T Entity](store config.Store, cfg ListConfig[T]) *List[T] {
	l := &List[T]{
		store:   store,
		cfg:     cfg,
		sortKey: "id",
		page:    1,
	}

	payload, ok, err := store.Load(cfg.Collection)
	if err != nil {
		log.Printf("⚠️  load %s: %v (starting empty)", cfg.Collection, err)
		return l
	}
	if !ok {
		return l
	}
	if err := json.Unmarshal([]byte(payload), &l.items); err != nil {
		log.Printf("⚠️  malformed %s payload: %v (starting empty)", cfg.Collection, err)
		l.items = nil
	}
	return l
}

// SetSearch replaces the query and jumps back to the first page.
func (l *List[T]) SetSearch(query string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.search = query
	l.page = 1
}

// SetSort selects the sort field; selecting the current field again
// flips the direction, like a second click on a column header.
func (l *List[T]) SetSort(field string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sortKey == field {
		l.sortDesc = !l.sortDesc
		return
	}
	l.sortKey = field
	l.sortDesc = false
}

// SetPage clamps n to [1, totalPages] under the current filter.
func (l *List[T]) SetPage(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg.PageSize <= 0 {
		return
	}
	total := totalPages(len(l.filtered()), l.cfg.PageSize)
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	l.page = n
}

// View derives the current projection. Pure: no state changes, safe to
// call repeatedly.
func (l *List[T]) View() ListView[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	f := l.filtered()
	sorted := make([]T, len(f))
	copy(sorted, f)
	l.sortInPlace(sorted)

	view := ListView[T]{Page: l.page, TotalPages: 1}
	if l.cfg.PageSize <= 0 {
		view.Items = sorted
		return view
	}

	view.TotalPages = totalPages(len(sorted), l.cfg.PageSize)
	start := (l.page - 1) * l.cfg.PageSize
	if start >= len(sorted) {
		view.Items = []T{}
		return view
	}
	end := start + l.cfg.PageSize
	if end > len(sorted) {
		end = len(sorted)
	}
	view.Items = sorted[start:end]
	return view
}

// Create validates the draft, assigns the next id, appends and
// persists. The required-field check is presence-only: a field is
// missing when it is absent, null, or a blank string.
func (l *List[T]) Create(draft map[string]any) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	if missing := missingFields(draft, l.cfg.Required); len(missing) > 0 {
		return zero, &models.ValidationError{Missing: missing}
	}

	merged := make(map[string]any, len(draft)+1)
	for k, v := range draft {
		merged[k] = v
	}
	merged["id"] = l.nextID()

	item, err := decodeEntity[T](merged)
	if err != nil {
		return zero, fmt.Errorf("decode draft: %w", err)
	}

	l.items = append(l.items, item)
	if err := l.persist(); err != nil {
		l.items = l.items[:len(l.items)-1]
		return zero, err
	}
	return item, nil
}

// Update shallow-merges patch into the item with that id. Patch fields
// overwrite, everything else is retained; "id" in the patch is ignored.
func (l *List[T]) Update(id int, patch map[string]any) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var zero T
	idx := l.indexOf(id)
	if idx < 0 {
		return zero, models.ErrNotFound
	}

	current, err := encodeEntity(l.items[idx])
	if err != nil {
		return zero, err
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		current[k] = v
	}

	item, err := decodeEntity[T](current)
	if err != nil {
		return zero, fmt.Errorf("decode patch: %w", err)
	}

	prev := l.items[idx]
	l.items[idx] = item
	if err := l.persist(); err != nil {
		l.items[idx] = prev
		return zero, err
	}
	return item, nil
}

// Remove deletes the item if present. A missing id is not an error; the
// collection is persisted either way.
func (l *List[T]) Remove(id int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx >= 0 {
		l.items = append(l.items[:idx], l.items[idx+1:]...)
	}
	return l.persist()
}

func (l *List[T]) indexOf(id int) int {
	for i, item := range l.items {
		if item.EntityID() == id {
			return i
		}
	}
	return -1
}

// nextID is max(live ids)+1, so an id is never reissued while its
// holder is alive.
func (l *List[T]) nextID() int {
	max := 0
	for _, item := range l.items {
		if item.EntityID() > max {
			max = item.EntityID()
		}
	}
	return max + 1
}

func (l *List[T]) filtered() []T {
	if strings.TrimSpace(l.search) == "" {
		return l.items
	}
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if l.cfg.Matches != nil && l.cfg.Matches(item, l.search) {
			out = append(out, item)
		}
	}
	return out
}

func (l *List[T]) sortInPlace(items []T) {
	key := l.sortKey
	desc := l.sortDesc
	sort.SliceStable(items, func(i, j int) bool {
		c := compareField(items[i], items[j], key)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func (l *List[T]) persist() error {
	payload, err := json.Marshal(l.items)
	if err != nil {
		return err
	}
	return l.store.Save(l.cfg.Collection, string(payload))
}

func totalPages(count, pageSize int) int {
	if count == 0 {
		return 1
	}
	pages := count / pageSize
	if count%pageSize != 0 {
		pages++
	}
	return pages
}

// ContainsFold is the filter predicate the entity bindings share:
// case-insensitive substring match.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func missingFields(draft map[string]any, required []string) []string {
	var missing []string
	for _, field := range required {
		v, ok := draft[field]
		if !ok || v == nil {
			missing = append(missing, field)
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func decodeEntity[T Entity](fields map[string]any) (T, error) {
	var item T
	b, err := json.Marshal(fields)
	if err != nil {
		return item, err
	}
	err = json.Unmarshal(b, &item)
	return item, err
}

func encodeEntity[T Entity](item T) (map[string]any, error) {
	b, err := json.Marshal(item)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	err = json.Unmarshal(b, &out)
	return out, err
}

// compareField orders two entities by the named field's native value:
// numerically for numbers, lexicographically for strings. An unknown
// field compares equal, which leaves the order untouched under a
// stable sort.
func compareField[T Entity](a, b T, key string) int {
	av, ok := fieldValue(a, key)
	if !ok {
		return 0
	}
	bv, _ := fieldValue(b, key)

	switch x := av.(type) {
	case float64:
		y, ok := toFloat(bv)
		if !ok {
			return 0
		}
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case string:
		y, ok := bv.(string)
		if !ok {
			return 0
		}
		return strings.Compare(x, y)
	}
	return 0
}

// fieldValue resolves key against the struct's json tags. Numeric kinds
// come back as float64 so id, price and kapasitas all compare the same
// way.
func fieldValue(item any, key string) (any, bool) {
	v := reflect.ValueOf(item)
	t := v.Type()
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if tag == "" {
			tag = strings.ToLower(t.Field(i).Name)
		}
		if tag != key {
			continue
		}
		fv := v.Field(i)
		if f, ok := toFloat(fv.Interface()); ok {
			return f, true
		}
		if fv.Kind() == reflect.String {
			return fv.String(), true
		}
		return nil, false
	}
	return nil, false
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
