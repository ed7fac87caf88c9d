package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"debategame/models"
)

// MemoryStore implements Store with in-process maps. It mirrors the
// MongoStore semantics (integer id sequences, compare-and-swap turn
// advancement) and backs the test suites.
type MemoryStore struct {
	mutex     sync.RWMutex
	users     map[string]*models.User
	debates   map[int64]*models.Debate
	arguments map[int64]*models.Argument
	counters  map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:     make(map[string]*models.User),
		debates:   make(map[int64]*models.Debate),
		arguments: make(map[int64]*models.Argument),
		counters:  make(map[string]int64),
	}
}

func (s *MemoryStore) nextSequence(name string) int64 {
	s.counters[name]++
	return s.counters[name]
}

func (s *MemoryStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	user, ok := s.users[username]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return ErrDuplicate
	}
	copied := *user
	s.users[user.Username] = &copied
	return nil
}

func (s *MemoryStore) CreateDebate(_ context.Context, debate *models.Debate) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	debate.ID = s.nextSequence("debates")
	copied := *debate
	copied.Arguments = nil
	s.debates[copied.ID] = &copied
	return nil
}

func (s *MemoryStore) FindDebateByID(_ context.Context, id int64) (*models.Debate, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	debate, ok := s.debates[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *debate
	copied.Participants = append([]string(nil), debate.Participants...)
	copied.ArgumentIDs = append([]int64(nil), debate.ArgumentIDs...)

	copied.Arguments = []models.Argument{}
	for _, argument := range s.arguments {
		if argument.DebateID == id {
			copied.Arguments = append(copied.Arguments, *argument)
		}
	}
	sort.Slice(copied.Arguments, func(i, j int) bool {
		return copied.Arguments[i].ID < copied.Arguments[j].ID
	})
	return &copied, nil
}

func (s *MemoryStore) CreateArgument(_ context.Context, argument *models.Argument) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	argument.ID = s.nextSequence("arguments")
	copied := *argument
	s.arguments[copied.ID] = &copied
	return nil
}

func (s *MemoryStore) LinkArgumentToDebate(_ context.Context, debateID, argumentID int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	debate, ok := s.debates[debateID]
	if !ok {
		return ErrNotFound
	}
	debate.ArgumentIDs = append(debate.ArgumentIDs, argumentID)
	debate.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) LinkArgumentToUser(_ context.Context, username string, argumentID int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, ok := s.users[username]
	if !ok {
		return ErrNotFound
	}
	user.ArgumentIDs = append(user.ArgumentIDs, argumentID)
	user.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) LinkDebateToUser(_ context.Context, username string, debateID int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, ok := s.users[username]
	if !ok {
		return ErrNotFound
	}
	user.DebateIDs = append(user.DebateIDs, debateID)
	user.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) AdvanceDebateTurn(_ context.Context, debateID int64, from, to string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	debate, ok := s.debates[debateID]
	if !ok {
		return ErrNotFound
	}
	if debate.TurnUsername != from {
		return ErrStaleTurn
	}
	debate.TurnUsername = to
	debate.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) AttachArgumentScore(_ context.Context, argumentID int64, score int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	argument, ok := s.arguments[argumentID]
	if !ok {
		return ErrNotFound
	}
	argument.Score = &score
	argument.UpdatedAt = time.Now()
	return nil
}

// DebateCount reports the number of stored debates. Test helper.
func (s *MemoryStore) DebateCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.debates)
}

// ArgumentCount reports the number of stored arguments. Test helper.
func (s *MemoryStore) ArgumentCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.arguments)
}
