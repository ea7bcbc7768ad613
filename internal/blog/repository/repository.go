package repository

import (
	"context"
	"errors"

	"github.com/contentforge/content-api/internal/blog"
)

var (
	ErrNotFound      = errors.New("blog not found")
	ErrInvalidID     = errors.New("invalid blog id format")
	ErrDuplicatePath = errors.New("blogpath already exists")
)

// Repository is the persistence surface for blog posts.
type Repository interface {
	Insert(ctx context.Context, p *blog.Post) (*blog.Post, error)
	// FindAll returns posts ordered by publish time, newest first.
	FindAll(ctx context.Context) ([]*blog.Post, error)
	FindByID(ctx context.Context, id string) (*blog.Post, error)
	FindByPath(ctx context.Context, path string) (*blog.Post, error)
	// PathTaken reports whether a post other than excludeID already uses the
	// given blogpath. Pass excludeID == "" to consider all posts.
	PathTaken(ctx context.Context, path, excludeID string) (bool, error)
	// Replace overwrites the post with the given id and returns the stored
	// result.
	Replace(ctx context.Context, id string, p *blog.Post) (*blog.Post, error)
	// DeleteByID removes a post and returns it, so callers can release the
	// files it referenced.
	DeleteByID(ctx context.Context, id string) (*blog.Post, error)
}
