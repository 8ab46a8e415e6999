package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type CampaignFilter struct {
	Descending bool
	Offset     int
	Limit      int
}

type CampaignRepo interface {
	Create(ctx context.Context, tx *gorm.DB, campaign *domain.Campaign) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Campaign, error)
	List(ctx context.Context, tx *gorm.DB, filter CampaignFilter) ([]*domain.Campaign, int64, error)
	Update(ctx context.Context, tx *gorm.DB, campaign *domain.Campaign) error
}

type campaignRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCampaignRepo(db *gorm.DB, baseLog *logger.Logger) CampaignRepo {
	return &campaignRepo{db: db, log: baseLog.With("repo", "CampaignRepo")}
}

func (r *campaignRepo) Create(ctx context.Context, tx *gorm.DB, campaign *domain.Campaign) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(campaign).Error; err != nil {
		return Translate("campaign.create", err)
	}
	return nil
}

func (r *campaignRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*domain.Campaign, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Campaign
	if err := t.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("campaign.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *campaignRepo) List(ctx context.Context, tx *gorm.DB, filter CampaignFilter) ([]*domain.Campaign, int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Model(&domain.Campaign{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, Translate("campaign.list", err)
	}

	q = q.Order(clause.OrderByColumn{
		Column: clause.Column{Name: "name"},
		Desc:   filter.Descending,
	})
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var out []*domain.Campaign
	if err := q.Find(&out).Error; err != nil {
		return nil, 0, Translate("campaign.list", err)
	}
	return out, total, nil
}

func (r *campaignRepo) Update(ctx context.Context, tx *gorm.DB, campaign *domain.Campaign) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(campaign).Error; err != nil {
		return Translate("campaign.update", err)
	}
	return nil
}
