package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"guid-gatherer/idgen"
	"guid-gatherer/models"
	"guid-gatherer/types"
	"guid-gatherer/utils"
)

// RecordPointer is satisfied by pointers to the models in package models.
type RecordPointer[M any] interface {
	*M
	models.Record
}

// MemoryRepository keeps records in process memory. It backs DB_DRIVER=memory
// and the HTTP tests.
type MemoryRepository[M any, P RecordPointer[M]] struct {
	mu      sync.RWMutex
	records map[types.SnowflakeID]M
	now     func() time.Time
}

func NewMemoryRepository[M any, P RecordPointer[M]]() *MemoryRepository[M, P] {
	return &MemoryRepository[M, P]{
		records: make(map[types.SnowflakeID]M),
		now:     time.Now,
	}
}

func (r *MemoryRepository[M, P]) Create(ctx context.Context, record *M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertLocked(record)
	return nil
}

func (r *MemoryRepository[M, P]) insertLocked(record *M) {
	p := P(record)
	if p.GetID() == 0 {
		p.SetID(types.SnowflakeID(idgen.GenerateID()))
	}
	p.Touch(r.now(), true)
	r.records[p.GetID()] = *record
}

func (r *MemoryRepository[M, P]) FindAll(ctx context.Context) ([]M, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]types.SnowflakeID, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]M, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.records[id])
	}
	return out, nil
}

func (r *MemoryRepository[M, P]) FindByID(ctx context.Context, id types.SnowflakeID) (*M, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, utils.ErrRecordNotFound
	}
	return &record, nil
}

func (r *MemoryRepository[M, P]) Save(ctx context.Context, record *M) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := P(record)
	if _, ok := r.records[p.GetID()]; !ok {
		return utils.ErrRecordNotFound
	}
	p.Touch(r.now(), false)
	r.records[p.GetID()] = *record
	return nil
}

func (r *MemoryRepository[M, P]) Delete(ctx context.Context, id types.SnowflakeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return utils.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *MemoryRepository[M, P]) CreateBatch(ctx context.Context, records []M) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range records {
		r.insertLocked(&records[i])
	}
	return nil
}
