package store

import (
	"sort"
	"sync"
	"time"

	"github.com/SubhashKumar14/LearnPath/internal/models"
)

// NewMemory builds a fully in-memory Store. State lives for the lifetime
// of the process only.
func NewMemory() *Store {
	return &Store{
		Users:    &memoryUsers{byEmail: map[string]uint{}, byID: map[uint]models.User{}},
		Roadmaps: &memoryRoadmaps{byID: map[uint]models.Roadmap{}},
		Progress: &memoryProgress{completed: map[progressKey]map[uint]struct{}{}},
	}
}

type memoryUsers struct {
	mu      sync.RWMutex
	nextID  uint
	byEmail map[string]uint
	byID    map[uint]models.User
}

func (m *memoryUsers) Create(u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[u.Email]; ok {
		return ErrDuplicateEmail
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	m.byEmail[u.Email] = u.ID
	m.byID[u.ID] = *u
	return nil
}

func (m *memoryUsers) FindByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := m.byID[id]
	return &u, nil
}

func (m *memoryUsers) CountByRole(role models.UserRole) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, u := range m.byID {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (m *memoryUsers) FindByID(id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

type memoryRoadmaps struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]models.Roadmap
}

func (m *memoryRoadmaps) Create(r *models.Roadmap) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	r.ID = m.nextID
	r.CreatedAt = time.Now()
	m.byID[r.ID] = *r
	return nil
}

func (m *memoryRoadmaps) List() ([]models.Roadmap, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Roadmap, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRoadmaps) GetByID(id uint) (*models.Roadmap, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

type progressKey struct {
	userID    uint
	roadmapID uint
}

type memoryProgress struct {
	mu        sync.RWMutex
	completed map[progressKey]map[uint]struct{}
}

func (m *memoryProgress) SetCompletion(userID, roadmapID, taskID uint, completed bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := progressKey{userID: userID, roadmapID: roadmapID}
	set := m.completed[key]
	if completed {
		if set == nil {
			set = map[uint]struct{}{}
			m.completed[key] = set
		}
		set[taskID] = struct{}{}
		return nil
	}
	delete(set, taskID)
	return nil
}

func (m *memoryProgress) GetCompleted(userID, roadmapID uint) ([]uint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []uint{}
	for taskID := range m.completed[progressKey{userID: userID, roadmapID: roadmapID}] {
		out = append(out, taskID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
