package hero

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/Owhab/nexacms-sub002/internal/domain"
	"github.com/Owhab/nexacms-sub002/internal/platform/dbctx"
	"github.com/Owhab/nexacms-sub002/internal/platform/logger"
)

type SectionRepo interface {
	GetByID(dbc dbctx.Context, id string) (*types.HeroSection, error)
	Exists(dbc dbctx.Context, id string) (bool, error)
	List(dbc dbctx.Context, variant string, limit int) ([]*types.HeroSection, error)
	Upsert(dbc dbctx.Context, section *types.HeroSection) error
	Delete(dbc dbctx.Context, id string) error
}

type sectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSectionRepo(db *gorm.DB, baseLog *logger.Logger) SectionRepo {
	return &sectionRepo{
		db:  db,
		log: baseLog.With("repo", "HeroSectionRepo"),
	}
}

// GetByID returns nil, nil when the section does not exist.
func (r *sectionRepo) GetByID(dbc dbctx.Context, id string) (*types.HeroSection, error) {
	if id == "" {
		return nil, nil
	}
	var s types.HeroSection
	err := dbc.Conn(r.db).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sectionRepo) Exists(dbc dbctx.Context, id string) (bool, error) {
	var count int64
	if err := dbc.Conn(r.db).
		Model(&types.HeroSection{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sectionRepo) List(dbc dbctx.Context, variant string, limit int) ([]*types.HeroSection, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := dbc.Conn(r.db).Order("updated_at DESC").Limit(limit)
	if variant != "" {
		q = q.Where("variant = ?", variant)
	}
	var out []*types.HeroSection
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert inserts the section or overwrites its data, bumping the version.
func (r *sectionRepo) Upsert(dbc dbctx.Context, section *types.HeroSection) error {
	if section == nil || section.ID == "" {
		return errors.New("hero section id required")
	}
	if section.Version <= 0 {
		section.Version = 1
	}
	return dbc.Conn(r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"variant":    section.Variant,
			"data":       section.Data,
			"updated_by": section.UpdatedBy,
			"version":    gorm.Expr("hero_section.version + 1"),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(section).Error
}

func (r *sectionRepo) Delete(dbc dbctx.Context, id string) error {
	return dbc.Conn(r.db).Where("id = ?", id).Delete(&types.HeroSection{}).Error
}
