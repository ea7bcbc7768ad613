package service

import (
	"context"

	"github.com/contentforge/content-api/internal/product"
	"github.com/contentforge/content-api/internal/product/repository"
	"github.com/contentforge/content-api/internal/uploads"
)

// MissingFieldError reports the first required field that was absent from a
// create request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// Input carries the already-parsed request fields. nil document, array or
// file-group fields mean "absent": create substitutes defaults, update falls
// back to the stored value.
type Input struct {
	ProductName          string
	ProductLink          string
	CalendlyURL          string
	ProductPath          string
	Description          interface{}
	WhyChooseDes         interface{}
	WhoNeedDes           interface{}
	Category             interface{}
	Benefits             []interface{}
	CustomerTestimonials []interface{}
	Plans                []interface{}
	Images               []string
	Gallery              []string
}

func (in Input) missingRequired() string {
	switch {
	case in.Description == nil:
		return "description"
	case in.WhyChooseDes == nil:
		return "why_choose_des"
	case in.WhoNeedDes == nil:
		return "who_need_des"
	case in.Category == nil:
		return "category"
	}
	return ""
}

// Service implements the product operations on top of a repository and the
// upload sink.
type Service struct {
	repo repository.Repository
	sink uploads.Sink
}

func New(repo repository.Repository, sink uploads.Sink) *Service {
	return &Service{repo: repo, sink: sink}
}

// Create persists a new product. The productPath pre-check produces the
// conflict error; the repository's unique index backs it up under
// concurrency.
func (s *Service) Create(ctx context.Context, in Input) (*product.Product, error) {
	if f := in.missingRequired(); f != "" {
		return nil, &MissingFieldError{Field: f}
	}
	exists, err := s.repo.PathExists(ctx, in.ProductPath)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicatePath
	}
	p := &product.Product{
		ProductName:          in.ProductName,
		ProductLink:          in.ProductLink,
		CalendlyURL:          in.CalendlyURL,
		ProductPath:          in.ProductPath,
		Description:          in.Description,
		WhyChooseDes:         in.WhyChooseDes,
		WhoNeedDes:           in.WhoNeedDes,
		Category:             in.Category,
		ImageURL:             orEmptyStrings(in.Images),
		Gallery:              orEmptyStrings(in.Gallery),
		Benefits:             orEmptyDocs(in.Benefits),
		CustomerTestimonials: orEmptyDocs(in.CustomerTestimonials),
		Plans:                orEmptyDocs(in.Plans),
	}
	return s.repo.Insert(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]*product.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*product.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) GetByPath(ctx context.Context, path string) (*product.Product, error) {
	return s.repo.FindByPath(ctx, path)
}

// Update merges the input over the stored product: every absent field keeps
// its stored value. Each of the two file groups is replaced independently;
// replaced files are released from the sink after the write succeeds.
func (s *Service) Update(ctx context.Context, id string, in Input) (*product.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var stale []string
	images := existing.ImageURL
	if in.Images != nil {
		stale = append(stale, existing.ImageURL...)
		images = in.Images
	}
	gallery := existing.Gallery
	if in.Gallery != nil {
		stale = append(stale, existing.Gallery...)
		gallery = in.Gallery
	}

	p := &product.Product{
		ID:                   existing.ID,
		ProductName:          orString(in.ProductName, existing.ProductName),
		ProductLink:          orString(in.ProductLink, existing.ProductLink),
		CalendlyURL:          orString(in.CalendlyURL, existing.CalendlyURL),
		ProductPath:          orString(in.ProductPath, existing.ProductPath),
		Description:          orDoc(in.Description, existing.Description),
		WhyChooseDes:         orDoc(in.WhyChooseDes, existing.WhyChooseDes),
		WhoNeedDes:           orDoc(in.WhoNeedDes, existing.WhoNeedDes),
		Category:             orDoc(in.Category, existing.Category),
		ImageURL:             images,
		Gallery:              gallery,
		Benefits:             orDocs(in.Benefits, existing.Benefits),
		CustomerTestimonials: orDocs(in.CustomerTestimonials, existing.CustomerTestimonials),
		Plans:                orDocs(in.Plans, existing.Plans),
	}
	updated, err := s.repo.Replace(ctx, id, p)
	if err != nil {
		return nil, err
	}
	uploads.CleanupFiles(s.sink, stale)
	return updated, nil
}

// Delete removes the product and releases both file groups from the sink.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	uploads.CleanupFiles(s.sink, append(append([]string{}, deleted.ImageURL...), deleted.Gallery...))
	return nil
}

func orString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func orDoc(v, fallback interface{}) interface{} {
	if v == nil {
		return fallback
	}
	return v
}

func orDocs(v, fallback []interface{}) []interface{} {
	if v == nil {
		return fallback
	}
	return v
}

func orEmptyStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func orEmptyDocs(v []interface{}) []interface{} {
	if v == nil {
		return []interface{}{}
	}
	return v
}
