package repos

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ovenly/bakeshop-backend/internal/domain"
	"github.com/ovenly/bakeshop-backend/internal/pkg/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *domain.User) error
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.User, error)
	Update(ctx context.Context, tx *gorm.DB, user *domain.User) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, user *domain.User) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		return Translate("user.create", err)
	}
	return nil
}

func (r *userRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*domain.User, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.User
	if err := t.WithContext(ctx).
		Where("name = ?", name).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, Translate("user.get", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *userRepo) Update(ctx context.Context, tx *gorm.DB, user *domain.User) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(ctx).Omit(clause.Associations).Save(user).Error; err != nil {
		return Translate("user.update", err)
	}
	return nil
}
