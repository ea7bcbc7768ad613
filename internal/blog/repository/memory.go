package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/contentforge/content-api/internal/blog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Repository used by unit tests. It mirrors the
// Mongo repo's behavior, including blogpath uniqueness and id format checks.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*blog.Post
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*blog.Post)}
}

func (m *MemoryRepo) Insert(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.store {
		if other.Blogpath == p.Blogpath {
			return nil, ErrDuplicatePath
		}
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	m.store[p.ID.Hex()] = &cp
	return p, nil
}

func (m *MemoryRepo) FindAll(ctx context.Context) ([]*blog.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*blog.Post, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out, nil
}

func (m *MemoryRepo) FindByID(ctx context.Context, id string) (*blog.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) FindByPath(ctx context.Context, path string) (*blog.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.store {
		if p.Blogpath == path {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) PathTaken(ctx context.Context, path, excludeID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, p := range m.store {
		if p.Blogpath == path && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepo) Replace(ctx context.Context, id string, p *blog.Post) (*blog.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return nil, ErrNotFound
	}
	for otherID, other := range m.store {
		if otherID != id && other.Blogpath == p.Blogpath {
			return nil, ErrDuplicatePath
		}
	}
	p.ID = oid
	cp := *p
	m.store[id] = &cp
	return p, nil
}

func (m *MemoryRepo) DeleteByID(ctx context.Context, id string) (*blog.Post, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.store, id)
	return p, nil
}
