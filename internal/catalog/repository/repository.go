package repository

import (
	"github.com/stylediscover/server/internal/catalog/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutfitRepository struct {
	db *gorm.DB
}

func NewGormOutfitRepository(db *gorm.DB) *GormOutfitRepository {
	return &GormOutfitRepository{db: db}
}

func (r *GormOutfitRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Outfit{})
}

// FindAll loads the whole catalog in id order. Called once at startup to
// build the in-memory snapshot; runtime filtering never hits the database.
func (r *GormOutfitRepository) FindAll() ([]domain.Outfit, error) {
	var outfits []domain.Outfit
	err := r.db.Order("id").Find(&outfits).Error
	return outfits, err
}

func (r *GormOutfitRepository) FindByID(id uint) (*domain.Outfit, error) {
	var outfit domain.Outfit
	err := r.db.First(&outfit, id).Error
	if err != nil {
		return nil, err
	}
	return &outfit, nil
}

func (r *GormOutfitRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Outfit{}).Count(&count).Error
	return count, err
}

// Seed inserts the static dataset, leaving existing rows untouched
func (r *GormOutfitRepository) Seed(outfits []domain.Outfit) error {
	if len(outfits) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(outfits, 100).Error
}
