package site

import (
	"context"
	"fmt"
	"time"

	"github.com/terrenohq/asistencia-backend-go/internal/domain/policy"
	"github.com/terrenohq/asistencia-backend-go/internal/domain/site"
)

type SiteServiceImpl struct {
	site.SiteRepository
	policies policy.Set
}

func NewSiteService(siteRepo site.SiteRepository, policies policy.Set) site.SiteService {
	return &SiteServiceImpl{
		SiteRepository: siteRepo,
		policies:       policies,
	}
}

// CreateSite implements site.SiteService.
func (s *SiteServiceImpl) CreateSite(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	created, err := s.SiteRepository.Create(ctx, site.Site{
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Active:       true,
	})
	if err != nil {
		return site.SiteResponse{}, fmt.Errorf("failed to create site: %w", err)
	}

	return s.toSiteResponse(created), nil
}

// GetSite implements site.SiteService.
func (s *SiteServiceImpl) GetSite(ctx context.Context, id string) (site.SiteResponse, error) {
	st, err := s.SiteRepository.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}

	return s.toSiteResponse(st), nil
}

// UpdateSite implements site.SiteService.
func (s *SiteServiceImpl) UpdateSite(ctx context.Context, req site.UpdateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	if err := s.SiteRepository.Update(ctx, req); err != nil {
		return site.SiteResponse{}, err
	}

	st, err := s.SiteRepository.GetByID(ctx, req.ID)
	if err != nil {
		return site.SiteResponse{}, err
	}

	return s.toSiteResponse(st), nil
}

// ListSites implements site.SiteService.
func (s *SiteServiceImpl) ListSites(ctx context.Context, filter site.SiteFilter) ([]site.SiteResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	sites, total, err := s.SiteRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sites: %w", err)
	}

	responses := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		responses = append(responses, s.toSiteResponse(st))
	}

	return responses, total, nil
}

func (s *SiteServiceImpl) toSiteResponse(st site.Site) site.SiteResponse {
	return site.SiteResponse{
		ID:           st.ID,
		Name:         st.Name,
		Latitude:     st.Latitude,
		Longitude:    st.Longitude,
		RadiusMeters: st.RadiusMeters,
		Policy:       string(s.policies.For(st.ID).Kind),
		Active:       st.Active,
		CreatedAt:    st.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    st.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
