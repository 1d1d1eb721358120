package usecase

import (
	"context"
	"sort"
	"sync"

	"property_manager/internal/domain/entities"
	"property_manager/internal/usecase/interfaces"
)

// memPaymentRepo is an in-memory IPaymentRepository with the same
// conditional-write semantics as the SQL store.
type memPaymentRepo struct {
	mu       sync.Mutex
	rows     map[string]entities.Payment
	casErr   error
	casHits  int
	batchErr error
}

var _ interfaces.IPaymentRepository = (*memPaymentRepo)(nil)

// memTransactor runs fn directly and remembers the error a real transaction
// would have rolled back on.
type memTransactor struct {
	calls      int
	rolledBack error
}

func (t *memTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	err := fn(ctx)
	t.rolledBack = err
	return err
}

func newMemPaymentRepo(ps ...entities.Payment) *memPaymentRepo {
	r := &memPaymentRepo{rows: make(map[string]entities.Payment)}
	for _, p := range ps {
		r.rows[p.ID] = p
	}
	return r
}

func (r *memPaymentRepo) get(id string) entities.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id]
}

func (r *memPaymentRepo) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[p.ID] = p
	return p, nil
}

func (r *memPaymentRepo) CreateBatch(ctx context.Context, ps []entities.Payment) (int, error) {
	if r.batchErr != nil {
		return 0, r.batchErr
	}
	for _, p := range ps {
		if _, err := r.Create(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(ps), nil
}

func (r *memPaymentRepo) GetByID(_ context.Context, id string) (entities.Payment, error) {
	return r.get(id), nil
}

func (r *memPaymentRepo) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rows[id]
	delete(r.rows, id)
	return ok, nil
}

func (r *memPaymentRepo) SetGatewayRef(_ context.Context, id string, ref string) (entities.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return entities.Payment{}, nil
	}
	p.GatewayRef = ref
	r.rows[id] = p
	return p, nil
}

func (r *memPaymentRepo) CompareAndSetStatus(_ context.Context, id string, from entities.PaymentStatus, change entities.StatusChange) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.casHits++
	if r.casErr != nil {
		return false, r.casErr
	}
	p, ok := r.rows[id]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = change.To
	p.PaidAt = change.PaidAt
	if change.GatewayRef != "" {
		p.GatewayRef = change.GatewayRef
	}
	r.rows[id] = p
	return true, nil
}

func (r *memPaymentRepo) list(keep func(entities.Payment) bool) []entities.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Payment, 0, len(r.rows))
	for _, p := range r.rows {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DueDate.Equal(out[j].DueDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

func (r *memPaymentRepo) ListByLease(_ context.Context, leaseID string) ([]entities.Payment, error) {
	return r.list(func(p entities.Payment) bool { return p.LeaseID == leaseID }), nil
}

func (r *memPaymentRepo) ListByLandlord(_ context.Context, _ string) ([]entities.Payment, error) {
	return r.list(func(entities.Payment) bool { return true }), nil
}

func (r *memPaymentRepo) ListByTenantUser(_ context.Context, _ string) ([]entities.Payment, error) {
	return r.list(func(entities.Payment) bool { return true }), nil
}

func (r *memPaymentRepo) ListAwaitingGateway(_ context.Context, after entities.PaymentCursor, limit int) ([]entities.Payment, error) {
	out := r.list(func(p entities.Payment) bool {
		return p.Status == entities.PaymentStatusPending && p.GatewayRef != "" && after.Precedes(p)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
