package usecases_test

import (
	"context"
	"mime/multipart"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/infrastructure/jobs"
)

// MockSubmissionRepository serves every form-backed kind.
type MockSubmissionRepository[E any] struct {
	mock.Mock
}

func (m *MockSubmissionRepository[E]) Create(ctx context.Context, record *E) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSubmissionRepository[E]) List(ctx context.Context) ([]*E, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*E), args.Error(1)
}

func (m *MockSubmissionRepository[E]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockHackathonRepository struct {
	MockSubmissionRepository[entities.HackathonTeam]
}

func (m *MockHackathonRepository) ParticipantsOf(ctx context.Context, teamID uuid.UUID, role entities.ParticipantRole) ([]*entities.HackathonParticipant, error) {
	args := m.Called(ctx, teamID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.HackathonParticipant), args.Error(1)
}

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) ListActiveMOUs(ctx context.Context) ([]*entities.MOU, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MOU), args.Error(1)
}

func (m *MockContentRepository) ListGallery(ctx context.Context) ([]*entities.GalleryImage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GalleryImage), args.Error(1)
}

func (m *MockContentRepository) ListProjects(ctx context.Context) ([]*entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockContentRepository) ListCommunity(ctx context.Context, section string) ([]*entities.CommunityItem, error) {
	args := m.Called(ctx, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CommunityItem), args.Error(1)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Save(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, dir, fh)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStore) Remove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockMediaStore) URL(name string) string {
	return "https://site.example/media/" + name
}

// queueStub records what would have been handed to the dispatcher.
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

func (q *queueStub) only() jobs.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.sent) != 1 {
		panic("expected exactly one notification")
	}
	return q.sent[0]
}

func (q *queueStub) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.sent)
}
