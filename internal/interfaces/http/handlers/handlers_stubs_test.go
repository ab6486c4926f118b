package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"corpsite.backend/internal/domain/entities"
	domainerrors "corpsite.backend/internal/domain/errors"
	"corpsite.backend/internal/infrastructure/jobs"
)

// memoryRepo keeps records in insertion order; List returns them newest first.
type memoryRepo[E any] struct {
	mu      sync.Mutex
	records []*E
	idOf    func(*E) *uuid.UUID
	failing error
}

func newMemoryRepo[E any](idOf func(*E) *uuid.UUID) *memoryRepo[E] {
	return &memoryRepo[E]{idOf: idOf}
}

func (r *memoryRepo[E]) Create(_ context.Context, record *E) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing != nil {
		return r.failing
	}
	if id := r.idOf(record); *id == uuid.Nil {
		*id = uuid.New()
	}
	r.records = append(r.records, record)
	return nil
}

func (r *memoryRepo[E]) List(context.Context) ([]*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing != nil {
		return nil, r.failing
	}
	out := make([]*E, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *memoryRepo[E]) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing != nil {
		return r.failing
	}
	for i, rec := range r.records {
		if *r.idOf(rec) == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (r *memoryRepo[E]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

type memoryHackathonRepo struct {
	*memoryRepo[entities.HackathonTeam]
}

func (r memoryHackathonRepo) ParticipantsOf(_ context.Context, teamID uuid.UUID, role entities.ParticipantRole) ([]*entities.HackathonParticipant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, team := range r.records {
		if team.ID != teamID {
			continue
		}
		var out []*entities.HackathonParticipant
		for i := range team.Participants {
			if team.Participants[i].Role == role {
				out = append(out, &team.Participants[i])
			}
		}
		return out, nil
	}
	return nil, errors.New("team not found")
}

type queueStub struct {
	mu   sync.Mutex
	sent []jobs.Notification
}

func (q *queueStub) Enqueue(n jobs.Notification) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sent = append(q.sent, n)
	return true
}

func (q *queueStub) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.sent)
}

type mediaStub struct{}

func (mediaStub) URL(name string) string { return "https://site.example/media/" + name }

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
