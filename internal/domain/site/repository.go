package site

import (
	"context"
)

// SiteRepository defines data access methods for work sites.
type SiteRepository interface {
	// Create creates a new site
	Create(ctx context.Context, s Site) (Site, error)

	// GetByID retrieves a site by ID
	GetByID(ctx context.Context, id string) (Site, error)

	// Update applies a partial update
	Update(ctx context.Context, req UpdateSiteRequest) error

	// List retrieves sites with filters and pagination
	List(ctx context.Context, filter SiteFilter) ([]Site, int64, error)
}
