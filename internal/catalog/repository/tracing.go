package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/stylediscover/server/internal/catalog/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormOutfitRepositoryWithTracing wraps GormOutfitRepository with tracing
type GormOutfitRepositoryWithTracing struct {
	*GormOutfitRepository
}

// NewGormOutfitRepositoryWithTracing creates a new repository with tracing
func NewGormOutfitRepositoryWithTracing(db *gorm.DB) *GormOutfitRepositoryWithTracing {
	return &GormOutfitRepositoryWithTracing{
		GormOutfitRepository: NewGormOutfitRepository(db),
	}
}

// FindAllWithContext loads the catalog snapshot under a span
func (r *GormOutfitRepositoryWithTracing) FindAllWithContext(ctx context.Context) ([]domain.Outfit, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	outfits, err := r.GormOutfitRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.size", len(outfits)))
	return outfits, nil
}

// FindByIDWithContext looks up one outfit under a span
func (r *GormOutfitRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Outfit, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("outfit.id", int(id)),
		),
	)
	defer span.End()

	outfit, err := r.GormOutfitRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("outfit.category", outfit.Category))
	return outfit, nil
}

// SeedWithContext seeds the catalog under a span
func (r *GormOutfitRepositoryWithTracing) SeedWithContext(ctx context.Context, outfits []domain.Outfit) error {
	_, span := tracer.Start(ctx, "repository.Seed",
		trace.WithAttributes(
			attribute.Int("seed.count", len(outfits)),
		),
	)
	defer span.End()

	if err := r.GormOutfitRepository.Seed(outfits); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
