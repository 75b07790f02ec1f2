// Package repo implements the comparison store, backed by GORM. This file
// provides repository functions for the Comparison aggregate.
//
// All functions are context-aware and accept a *gorm.DB handle, making
// them safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only
// persistence and query composition.
//
// Error semantics:
//   - When a comparison is not found, GetComparison returns
//     gorm.ErrRecordNotFound (also exported here as ErrNotFound).
//   - DeleteComparison is idempotent: deleting an absent id is a no-op.
//   - On DB errors the raw gorm error is propagated.
//
// The store is append-only with respect to aggregates: there is no update
// function, by design. Listing order is newest-first, which together with
// single-row inserts gives readers the "prepend" view the history page
// relies on without ever observing a partially written collection.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/newshield/go-insurance-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateComparison persists a fully-stamped comparison snapshot as a
// single row. The insert is atomic with respect to readers: a concurrent
// ListComparisons either sees the whole aggregate or not at all.
func CreateComparison(ctx context.Context, db *gorm.DB, c *domain.Comparison) error {
	return db.WithContext(ctx).Create(c).Error
}

// ListComparisons returns all saved comparisons, newest first. It returns
// an empty slice when the store is empty.
func ListComparisons(ctx context.Context, db *gorm.DB) ([]domain.Comparison, error) {
	var out []domain.Comparison
	err := db.WithContext(ctx).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountComparisons returns the total number of saved comparisons.
func CountComparisons(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Comparison{}).
		Count(&total).Error
	return total, err
}

// ListComparisonsPage returns a page of comparisons, newest first. Use
// CountComparisons to obtain the total for pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListComparisonsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Comparison, error) {
	var out []domain.Comparison
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// GetComparison fetches a single comparison by id, or ErrNotFound.
func GetComparison(ctx context.Context, db *gorm.DB, id string) (*domain.Comparison, error) {
	var c domain.Comparison
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteComparison removes a comparison permanently. Deletion is
// idempotent: an absent id affects zero rows and returns nil.
func DeleteComparison(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Comparison{}).Error
}
