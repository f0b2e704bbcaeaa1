// Package memstore keeps properties and reservations in process memory. It
// implements the same ports as the Postgres layer and is selected with
// STORAGE_DRIVER=memory.
package memstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"stay-booking/internal/domain/property"
	"stay-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	properties   map[uuid.UUID]*property.Property
	reservations map[uuid.UUID]*reservation.Reservation

	locksMu       sync.Mutex
	propertyLocks map[uuid.UUID]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		properties:    make(map[uuid.UUID]*property.Property),
		reservations:  make(map[uuid.UUID]*reservation.Reservation),
		propertyLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// PutProperty inserts or replaces a property.
func (s *Store) PutProperty(p *property.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[p.ID()] = p
}

// PutReservation stores a copy of r as-is, bypassing booking checks.
func (s *Store) PutReservation(r *reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID()] = r.Clone()
}

type seedProperty struct {
	ID               uuid.UUID `json:"id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Title            string    `json:"title"`
	PricePerDayCents int64     `json:"price_per_day_cents"`
	Bedrooms         *int      `json:"bedrooms"`
	MinStayDays      *int      `json:"min_stay_days"`
	MaxStayDays      *int      `json:"max_stay_days"`
	MaxGuests        *int      `json:"max_guests"`
	Status           string    `json:"status"`
	PetsAllowed      bool      `json:"pets_allowed"`
	SmokingAllowed   bool      `json:"smoking_allowed"`
	PartiesAllowed   bool      `json:"parties_allowed"`
}

// LoadSeedFile reads a JSON array of properties into the store.
func (s *Store) LoadSeedFile(path string) (int, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- operator supplied path
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []seedProperty
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	now := time.Now().UTC()
	for i, seed := range seeds {
		status, err := property.NewStatus(seed.Status)
		if err != nil {
			return i, fmt.Errorf("seed property %d: %w", i, err)
		}
		prop, err := property.NewProperty(property.Params{
			ID:               seed.ID,
			OwnerID:          seed.OwnerID,
			Title:            seed.Title,
			PricePerDayCents: seed.PricePerDayCents,
			Bedrooms:         seed.Bedrooms,
			MinStayDays:      seed.MinStayDays,
			MaxStayDays:      seed.MaxStayDays,
			MaxGuests:        seed.MaxGuests,
			Status:           status,
			Policies: property.Policies{
				PetsAllowed:    seed.PetsAllowed,
				SmokingAllowed: seed.SmokingAllowed,
				PartiesAllowed: seed.PartiesAllowed,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return i, fmt.Errorf("seed property %d: %w", i, err)
		}
		s.PutProperty(prop)
	}
	return len(seeds), nil
}

func (s *Store) propertyLock(id uuid.UUID) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	l, ok := s.propertyLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.propertyLocks[id] = l
	}
	return l
}

// snapshot copies the committed reservations matching keep.
func (s *Store) snapshot(keep func(*reservation.Reservation) bool) []*reservation.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if keep(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// compareKey orders by date then id bytes, matching Postgres row comparison.
func compareKey(aDate time.Time, aID uuid.UUID, bDate time.Time, bID uuid.UUID) int {
	switch {
	case aDate.Before(bDate):
		return -1
	case aDate.After(bDate):
		return 1
	}
	return bytes.Compare(aID[:], bID[:])
}

func sortByCheckIn(rs []*reservation.Reservation, desc bool) {
	sort.Slice(rs, func(i, j int) bool {
		c := compareKey(rs[i].CheckIn(), rs[i].ID(), rs[j].CheckIn(), rs[j].ID())
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func sortByCheckOut(rs []*reservation.Reservation, desc bool) {
	sort.Slice(rs, func(i, j int) bool {
		c := compareKey(rs[i].CheckOut(), rs[i].ID(), rs[j].CheckOut(), rs[j].ID())
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func limitSlice(rs []*reservation.Reservation, limit int) []*reservation.Reservation {
	if limit > 0 && len(rs) > limit {
		return rs[:limit]
	}
	return rs
}
