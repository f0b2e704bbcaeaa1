package memstore

import (
	"context"
	"time"

	"stay-booking/internal/domain/property"
	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/infra"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork buffers writes per transaction and applies them atomically on
// commit. Versions are checked again at commit time.
type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) shared.UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := newMemTx(u.store, false)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

// WithinPropertyLock holds the property's mutex until the buffered writes are
// committed or discarded.
func (u *UnitOfWork) WithinPropertyLock(ctx context.Context, propertyID uuid.UUID, fn func(ctx context.Context, tx shared.Tx) error) error {
	lock := u.store.propertyLock(propertyID)
	lock.Lock()
	defer lock.Unlock()
	return u.Within(ctx, fn)
}

// Reader writes through immediately.
func (u *UnitOfWork) Reader() shared.Tx {
	return newMemTx(u.store, true)
}

type pendingWrite struct {
	res         *reservation.Reservation
	created     bool
	baseVersion int32
}

type memTx struct {
	store      *Store
	autocommit bool
	pending    map[uuid.UUID]*pendingWrite
}

func newMemTx(store *Store, autocommit bool) *memTx {
	return &memTx{
		store:      store,
		autocommit: autocommit,
		pending:    make(map[uuid.UUID]*pendingWrite),
	}
}

func (t *memTx) Properties() shared.PropertyReader {
	return memProperties{store: t.store}
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return memReservations{tx: t}
}

func (t *memTx) commit() error {
	if len(t.pending) == 0 {
		return nil
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { t.pending = make(map[uuid.UUID]*pendingWrite) }()

	for id, w := range t.pending {
		current, exists := s.reservations[id]
		switch {
		case w.created && exists:
			return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists")
		case !w.created && !exists:
			return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
		case !w.created && current.Version() != w.baseVersion:
			return infra.NewRepoErr(infra.KindConflict, "reservation version is stale")
		}
	}
	for id, w := range t.pending {
		s.reservations[id] = w.res
	}
	return nil
}

// lookup returns a copy of the reservation as this transaction sees it.
func (t *memTx) lookup(id uuid.UUID) (*reservation.Reservation, *pendingWrite) {
	if w, ok := t.pending[id]; ok {
		return w.res.Clone(), w
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	if r, ok := t.store.reservations[id]; ok {
		return r.Clone(), nil
	}
	return nil, nil
}

// visible merges committed rows with this transaction's pending writes.
func (t *memTx) visible(keep func(*reservation.Reservation) bool) []*reservation.Reservation {
	out := t.store.snapshot(func(r *reservation.Reservation) bool {
		_, overridden := t.pending[r.ID()]
		return !overridden && keep(r)
	})
	for _, w := range t.pending {
		if keep(w.res) {
			out = append(out, w.res.Clone())
		}
	}
	return out
}

func (t *memTx) stage(id uuid.UUID, w *pendingWrite) error {
	t.pending[id] = w
	if t.autocommit {
		return t.commit()
	}
	return nil
}

type memProperties struct {
	store *Store
}

func (p memProperties) GetByID(_ context.Context, id uuid.UUID) (*property.Property, error) {
	p.store.mu.RLock()
	defer p.store.mu.RUnlock()
	prop, ok := p.store.properties[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "property not found")
	}
	return prop, nil
}

type memReservations struct {
	tx *memTx
}

func (r memReservations) Create(_ context.Context, res *reservation.Reservation) error {
	if existing, _ := r.tx.lookup(res.ID()); existing != nil {
		return infra.NewRepoErr(infra.KindDuplicateKey, "reservation already exists")
	}
	return r.tx.stage(res.ID(), &pendingWrite{res: res.Clone(), created: true})
}

func (r memReservations) GetByID(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, _ := r.tx.lookup(id)
	if res == nil {
		return nil, infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return res, nil
}

func (r memReservations) Update(_ context.Context, res *reservation.Reservation, expectedVersion int32) error {
	current, w := r.tx.lookup(res.ID())
	if current == nil {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	if current.Version() != expectedVersion {
		return infra.NewRepoErr(infra.KindConflict, "reservation version is stale")
	}

	next := &pendingWrite{res: res.Clone(), baseVersion: expectedVersion}
	if w != nil {
		next.created = w.created
		next.baseVersion = w.baseVersion
	}
	next.res.AdvanceVersion()
	if err := r.tx.stage(res.ID(), next); err != nil {
		return err
	}

	res.AdvanceVersion()
	return nil
}

func (r memReservations) FindOverlapping(_ context.Context, propertyID uuid.UUID, period reservation.StayPeriod, statuses []reservation.Status) ([]*reservation.Reservation, error) {
	wanted := make(map[reservation.Status]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}
	out := r.tx.visible(func(res *reservation.Reservation) bool {
		return res.PropertyID() == propertyID && wanted[res.Status()] && res.OverlapsWith(period)
	})
	sortByCheckIn(out, false)
	return out, nil
}

func (r memReservations) ListCompletable(_ context.Context, before time.Time, limit int) ([]*reservation.Reservation, error) {
	out := r.tx.visible(func(res *reservation.Reservation) bool {
		return res.Status() == reservation.StatusConfirmed && res.CheckOut().Before(before)
	})
	sortByCheckOut(out, false)
	return limitSlice(out, limit), nil
}
