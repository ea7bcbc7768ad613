package repository

import (
	"context"
	"sync"

	"github.com/contentforge/content-api/internal/product"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory Repository used by unit tests. It mirrors the
// Mongo repo's behavior, including the productPath uniqueness constraint and
// id format checks.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*product.Product
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*product.Product)}
}

func (m *MemoryRepo) Insert(ctx context.Context, p *product.Product) (*product.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, other := range m.store {
		if other.ProductPath == p.ProductPath {
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

func (m *MemoryRepo) FindAll(ctx context.Context) ([]*product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*product.Product, 0, len(m.store))
	for _, p := range m.store {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) FindByID(ctx context.Context, id string) (*product.Product, error) {
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

func (m *MemoryRepo) FindByPath(ctx context.Context, path string) (*product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.store {
		if p.ProductPath == path {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) PathExists(ctx context.Context, path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.store {
		if p.ProductPath == path {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryRepo) Replace(ctx context.Context, id string, p *product.Product) (*product.Product, error) {
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
		if otherID != id && other.ProductPath == p.ProductPath {
			return nil, ErrDuplicatePath
		}
	}
	p.ID = oid
	cp := *p
	m.store[id] = &cp
	return p, nil
}

func (m *MemoryRepo) DeleteByID(ctx context.Context, id string) (*product.Product, error) {
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
