package services

import (
	"sync"
	"time"

	"hotel-admin/models"
)

// Overview is the static metric block at the top of the dashboard.
type Overview struct {
	TotalBookings  int    `json:"totalBookings"`
	TotalRevenue   string `json:"totalRevenue"`
	AvailableRooms int    `json:"availableRooms"`
	OccupancyRate  string `json:"occupancyRate"`
}

// DashboardState is what the dashboard screen renders: metrics, the
// recent-bookings table and the confirm/notify flags.
type DashboardState struct {
	Overview            Overview               `json:"overview"`
	RecentBookings      []models.RecentBooking `json:"recentBookings"`
	ConfirmPendingID    int                    `json:"confirmPendingId"`
	ConfirmPending      bool                   `json:"confirmPending"`
	NotificationVisible bool                   `json:"notificationVisible"`
}

// DashboardService holds the dashboard's demo data and the deletion
// confirm/notify machine: Idle → ConfirmPending(id) → Idle, with a
// transient notification that hides itself after notifyAfter. A second
// delete inside the window restarts the timer; last write to the
// visibility flag wins.
type DashboardService struct {
	mu          sync.Mutex
	recent      []models.RecentBooking
	pendingID   int
	notifying   bool
	notifyTimer *time.Timer
	notifyAfter time.Duration
}

const notificationTTL = 3 * time.Second

func NewDashboardService() *DashboardService {
	return &DashboardService{
		recent: []models.RecentBooking{
			{ID: 1, Room: "Deluxe Room", Guest: "John Doe", CheckIn: "2023-10-15", CheckOut: "2023-10-20"},
			{ID: 2, Room: "Suite Room", Guest: "Jane Smith", CheckIn: "2023-10-16", CheckOut: "2023-10-18"},
			{ID: 3, Room: "Standard Room", Guest: "Alice Johnson", CheckIn: "2023-10-17", CheckOut: "2023-10-19"},
		},
		notifyAfter: notificationTTL,
	}
}

// State snapshots the dashboard for rendering.
func (s *DashboardService) State() DashboardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]models.RecentBooking, len(s.recent))
	copy(recent, s.recent)

	return DashboardState{
		Overview: Overview{
			TotalBookings:  120,
			TotalRevenue:   "$15,000",
			AvailableRooms: 45,
			OccupancyRate:  "75%",
		},
		RecentBookings:      recent,
		ConfirmPendingID:    s.pendingID,
		ConfirmPending:      s.pendingID != 0,
		NotificationVisible: s.notifying,
	}
}

// RequestDelete enters ConfirmPending for the given row. The id is not
// checked against the table here; confirmation resolves it.
func (s *DashboardService) RequestDelete(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingID = id
}

// CancelDelete returns to Idle without touching the table.
func (s *DashboardService) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingID = 0
}

// ConfirmDelete removes the pending row, shows the notification and
// arms the auto-hide timer. A no-op when nothing is pending.
func (s *DashboardService) ConfirmDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingID == 0 {
		return
	}
	id := s.pendingID
	s.pendingID = 0

	kept := s.recent[:0]
	for _, b := range s.recent {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.recent = kept

	s.notifying = true
	if s.notifyTimer != nil {
		s.notifyTimer.Stop()
	}
	s.notifyTimer = time.AfterFunc(s.notifyAfter, func() {
		s.mu.Lock()
		s.notifying = false
		s.mu.Unlock()
	})
}
