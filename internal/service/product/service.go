// Package product serves the paginated catalog listing.
package product

import (
	"context"

	"shopcart/internal/domain"
	productrepo "shopcart/internal/repository/product"
)

// DefaultPageSize matches the shop's five-products-per-page listing.
const DefaultPageSize = 5

// pagerWindow is the maximum number of page buttons shown around the
// current page.
const pagerWindow = 5

type Service struct {
	repo     productrepo.Repository
	pageSize int
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo, pageSize: DefaultPageSize}
}

// Page is one page of the catalog plus the pager metadata for rendering.
type Page struct {
	Products   []domain.Product `json:"products"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalCount int              `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
	Pager      []int            `json:"pager"`
}

// List returns the requested 1-based page of products. Pages out of range
// clamp to the nearest valid page.
func (s *Service) List(ctx context.Context, page int) (*Page, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalPages := (count + s.pageSize - 1) / s.pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	products, err := s.repo.List(ctx, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}

	return &Page{
		Products:   products,
		Page:       page,
		PageSize:   s.pageSize,
		TotalCount: count,
		TotalPages: totalPages,
		Pager:      pager(page, totalPages),
	}, nil
}

// GetByID exposes single-product lookup for product pages.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// pager returns the window of page numbers to offer, centered on current
// where possible.
func pager(current, total int) []int {
	window := pagerWindow
	if window > total {
		window = total
	}
	start := current - window/2
	if start < 1 {
		start = 1
	}
	if start+window-1 > total {
		start = total - window + 1
	}
	pages := make([]int, 0, window)
	for p := start; p < start+window; p++ {
		pages = append(pages, p)
	}
	return pages
}
