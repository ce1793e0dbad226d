package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// SeasonAll marks an outfit as season-agnostic; it passes any season filter.
const SeasonAll = "All Season"

// Outfit represents a catalog entry
type Outfit struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Category    string         `json:"category" gorm:"index"`
	Style       string         `json:"style"`
	Season      string         `json:"season"`
	Occasion    string         `json:"occasion"`
	Colors      pq.StringArray `json:"colors" gorm:"type:text[]"`
	Price       float64        `json:"price" gorm:"not null"`
	Brand       string         `json:"brand"`
	Image       string         `json:"image"`
	Images      pq.StringArray `json:"images,omitempty" gorm:"type:text[]"`
	Description string         `json:"description"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Rating      float64        `json:"rating,omitempty"`
	Sizes       pq.StringArray `json:"sizes,omitempty" gorm:"type:text[]"`
	Material    string         `json:"material,omitempty"`
	SKU         string         `json:"sku,omitempty" gorm:"uniqueIndex"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Outfit) TableName() string {
	return "outfits"
}

// Gallery returns the outfit's image gallery, falling back to the primary image
func (o *Outfit) Gallery() []string {
	if len(o.Images) > 0 {
		return o.Images
	}
	if o.Image != "" {
		return []string{o.Image}
	}
	return nil
}

// OutfitRepository defines the contract for catalog data access
type OutfitRepository interface {
	FindAll() ([]Outfit, error)
	FindByID(id uint) (*Outfit, error)
	Count() (int64, error)
	Seed(outfits []Outfit) error
}
