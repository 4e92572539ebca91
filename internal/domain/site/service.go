package site

import (
	"context"
)

// SiteService defines business logic for work site management
type SiteService interface {
	CreateSite(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetSite(ctx context.Context, id string) (SiteResponse, error)
	UpdateSite(ctx context.Context, req UpdateSiteRequest) (SiteResponse, error)
	ListSites(ctx context.Context, filter SiteFilter) ([]SiteResponse, int64, error)
}
