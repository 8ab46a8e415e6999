package services

import (
	"context"

	"github.com/ovenly/bakeshop-backend/internal/data/repos"
	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type CampaignListParams struct {
	Descending bool
	Offset     int
	Limit      int
}

type CampaignService interface {
	Create(ctx context.Context, create domain.CampaignCreate) (*domain.Campaign, error)
	Get(ctx context.Context, id uint) (*domain.Campaign, error)
	List(ctx context.Context, params CampaignListParams) ([]*domain.Campaign, int64, error)
	Update(ctx context.Context, id uint, patch domain.CampaignPatch) (*domain.Campaign, error)
}

type campaignService struct {
	log  *logger.Logger
	repo repos.CampaignRepo
}

func NewCampaignService(baseLog *logger.Logger, repo repos.CampaignRepo) CampaignService {
	return &campaignService{
		log:  baseLog.With("service", "CampaignService"),
		repo: repo,
	}
}

func (s *campaignService) Create(ctx context.Context, create domain.CampaignCreate) (*domain.Campaign, error) {
	campaign := &domain.Campaign{
		Name:        create.Name,
		Description: create.Description,
		DateStart:   create.DateStart,
		DateEnd:     create.DateEnd,
	}
	if err := s.repo.Create(ctx, nil, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *campaignService) Get(ctx context.Context, id uint) (*domain.Campaign, error) {
	campaign, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.NotFoundError("campaign.get", "Campaign not found")
	}
	return campaign, nil
}

func (s *campaignService) List(ctx context.Context, params CampaignListParams) ([]*domain.Campaign, int64, error) {
	return s.repo.List(ctx, nil, repos.CampaignFilter{
		Descending: params.Descending,
		Offset:     params.Offset,
		Limit:      params.Limit,
	})
}

func (s *campaignService) Update(ctx context.Context, id uint, patch domain.CampaignPatch) (*domain.Campaign, error) {
	campaign, err := s.repo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.NotFoundError("campaign.update", "Campaign not found")
	}
	patch.ApplyTo(campaign)
	if err := s.repo.Update(ctx, nil, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}
