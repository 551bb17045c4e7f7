package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/signal-au/signal-api/internal/domain"
	"github.com/signal-au/signal-api/pkg/pagination"
)

type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.Entry, error)
	// ListRecent returns up to limit entries for the user, newest date first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error)
	// FindByUserAndDate returns the latest entry for the given calendar date,
	// or nil when the user has not checked in that day.
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*domain.Entry, error)
	Update(ctx context.Context, entry *domain.Entry) error
	// CountForDate returns how many entries the user already has for a date.
	CountForDate(ctx context.Context, userID uuid.UUID, date string) (int64, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var entry domain.Entry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) List(ctx context.Context, userID uuid.UUID, filter domain.EntryFilter) ([]domain.Entry, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC")

	// Apply date filters
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with date < cursor.Date
			// or same date but id < cursor.ID
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var entries []domain.Entry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Entry, error) {
	var entries []domain.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*domain.Entry, error) {
	var entry domain.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // No entry for the day is not an error here
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *entryRepository) CountForDate(ctx context.Context, userID uuid.UUID, date string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Entry{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	return count, err
}
