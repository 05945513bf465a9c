package goal

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mis-finanzas/backend/internal/application/adapter"
	"github.com/mis-finanzas/backend/internal/domain/entity"
	domainerror "github.com/mis-finanzas/backend/internal/domain/error"
)

// fakeGoalRepository is an in-memory adapter.GoalRepository.
type fakeGoalRepository struct {
	mu    sync.Mutex
	goals map[uuid.UUID]*entity.Goal
	fail  error // when set, every call returns this error
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	goal.ID = uuid.New()
	stored := cloneGoal(goal)
	r.goals[goal.ID] = stored
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return cloneGoal(goal), nil
}

func (r *fakeGoalRepository) FindByOwner(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return nil, r.fail
	}
	var goals []*entity.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			goals = append(goals, cloneGoal(goal))
		}
	}
	return goals, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	if _, ok := r.goals[goal.ID]; !ok {
		return domainerror.ErrGoalNotFound
	}
	r.goals[goal.ID] = cloneGoal(goal)
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	delete(r.goals, id)
	return nil
}

func cloneGoal(goal *entity.Goal) *entity.Goal {
	clone := *goal
	clone.History = append([]entity.HistoryEntry(nil), goal.History...)
	return &clone
}

// fakeGoalFeed records published change events.
type fakeGoalFeed struct {
	mu        sync.Mutex
	published []uuid.UUID
	handlers  map[uuid.UUID][]func()
}

func newFakeGoalFeed() *fakeGoalFeed {
	return &fakeGoalFeed{handlers: make(map[uuid.UUID][]func())}
}

func (f *fakeGoalFeed) Publish(_ context.Context, ownerID uuid.UUID) error {
	f.mu.Lock()
	f.published = append(f.published, ownerID)
	handlers := append(([]func())(nil), f.handlers[ownerID]...)
	f.mu.Unlock()
	for _, h := range handlers {
		h()
	}
	return nil
}

func (f *fakeGoalFeed) Subscribe(_ context.Context, ownerID uuid.UUID, onChange func()) (adapter.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[ownerID] = append(f.handlers[ownerID], onChange)
	return fakeSubscription{}, nil
}

func (f *fakeGoalFeed) publishCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

type fakeSubscription struct{}

func (fakeSubscription) Close() error { return nil }

// sequenceGenerator yields id-1, id-2, ... deterministically.
type sequenceGenerator struct {
	n int
}

func (g *sequenceGenerator) Next() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}
