package service

import (
	"context"
	"errors"
	"time"

	"github.com/contentforge/content-api/internal/blog"
	"github.com/contentforge/content-api/internal/blog/repository"
	"github.com/contentforge/content-api/internal/uploads"
	"github.com/contentforge/content-api/pkg/slug"
)

// ErrMissingFields is returned when a required field is absent or empty.
var ErrMissingFields = errors.New("All required fields must be filled (title.en, description.en, content.en, author, products, category.en).")

// PostInput carries the already-parsed request fields for create and update.
// Images holds identifiers of freshly stored files; nil means the request
// carried no new files (update keeps the existing ones).
type PostInput struct {
	Title       blog.LocalizedText
	Author      string
	Description blog.LocalizedText
	Products    string
	Category    blog.LocalizedText
	Content     blog.LocalizedContent
	Images      []string
}

func (in PostInput) validate() error {
	if in.Title.En == "" || in.Description.En == "" || emptyContent(in.Content.En) ||
		in.Author == "" || in.Products == "" || in.Category.En == "" {
		return ErrMissingFields
	}
	return nil
}

func emptyContent(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}

// Service implements the blog operations on top of a repository and the
// upload sink.
type Service struct {
	repo repository.Repository
	sink uploads.Sink
}

func New(repo repository.Repository, sink uploads.Sink) *Service {
	return &Service{repo: repo, sink: sink}
}

// Create validates the input, derives the blogpath from the English title and
// persists a new post with the publish timestamp set.
func (s *Service) Create(ctx context.Context, in PostInput) (*blog.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	path := slug.Make(in.Title.En)
	taken, err := s.repo.PathTaken(ctx, path, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrDuplicatePath
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}
	post := &blog.Post{
		Title:       in.Title,
		Blogpath:    path,
		Author:      in.Author,
		Description: in.Description,
		Blogimage:   images,
		Products:    in.Products,
		Category:    in.Category,
		Content:     in.Content,
		PublishedAt: time.Now(),
	}
	return s.repo.Insert(ctx, post)
}

// List returns all posts, newest first.
func (s *Service) List(ctx context.Context) ([]*blog.Post, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*blog.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) GetByPath(ctx context.Context, path string) (*blog.Post, error) {
	return s.repo.FindByPath(ctx, path)
}

// Update replaces all validated fields of an existing post. The blogpath is
// recomputed from the new title; a change is checked for collisions against
// every other post. When new images were uploaded the previous ones are
// released from the sink after the write succeeds.
func (s *Service) Update(ctx context.Context, id string, in PostInput) (*blog.Post, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	newPath := slug.Make(in.Title.En)
	if newPath != existing.Blogpath {
		taken, err := s.repo.PathTaken(ctx, newPath, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, repository.ErrDuplicatePath
		}
	}
	images := existing.Blogimage
	var stale []string
	if in.Images != nil {
		stale = existing.Blogimage
		images = in.Images
	}
	post := &blog.Post{
		ID:          existing.ID,
		Title:       in.Title,
		Blogpath:    newPath,
		Author:      in.Author,
		Description: in.Description,
		Blogimage:   images,
		Products:    in.Products,
		Category:    in.Category,
		Content:     in.Content,
		PublishedAt: existing.PublishedAt,
		UpdatedAt:   time.Now(),
	}
	updated, err := s.repo.Replace(ctx, id, post)
	if err != nil {
		return nil, err
	}
	uploads.CleanupFiles(s.sink, stale)
	return updated, nil
}

// Delete removes the post and releases its images from the sink.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	uploads.CleanupFiles(s.sink, deleted.Blogimage)
	return nil
}
