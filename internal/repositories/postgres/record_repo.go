package postgres

import (
	"context"
	"errors"

	"github.com/yoockh/hojadevida/internal/models"
	"github.com/yoockh/hojadevida/internal/utils"
	"gorm.io/gorm"
)

// RecordRepository stores one kind of profile child record. Every read is
// scoped to a profile and returned in the repository's fixed order.
type RecordRepository[T any] interface {
	ListByProfile(ctx context.Context, profileID string, activeOnly bool) ([]T, error)
	Get(ctx context.Context, profileID, id string) (*T, error)
	Create(ctx context.Context, rec *T) error
	Save(ctx context.Context, rec *T) error
	Delete(ctx context.Context, profileID, id string) error
}

type recordRepo[T any] struct {
	db    *gorm.DB
	order string
}

func newRecordRepo[T any](db *gorm.DB, order string) RecordRepository[T] {
	return &recordRepo[T]{db: db, order: order}
}

// Most recent first for dated records; catalogue-like records keep entry order.
const (
	orderByStartDate = "start_date DESC, id"
	orderByDate      = "date DESC, id"
	orderByCreation  = "created_at ASC, id"
)

func NewWorkExperienceRepo(db *gorm.DB) RecordRepository[models.WorkExperience] {
	return newRecordRepo[models.WorkExperience](db, orderByStartDate)
}

func NewRecognitionRepo(db *gorm.DB) RecordRepository[models.Recognition] {
	return newRecordRepo[models.Recognition](db, orderByDate)
}

func NewCourseRepo(db *gorm.DB) RecordRepository[models.CompletedCourse] {
	return newRecordRepo[models.CompletedCourse](db, orderByStartDate)
}

func NewAcademicProductRepo(db *gorm.DB) RecordRepository[models.AcademicProduct] {
	return newRecordRepo[models.AcademicProduct](db, orderByCreation)
}

func NewLaborProductRepo(db *gorm.DB) RecordRepository[models.LaborProduct] {
	return newRecordRepo[models.LaborProduct](db, orderByDate)
}

func NewGarageSaleRepo(db *gorm.DB) RecordRepository[models.GarageSaleItem] {
	return newRecordRepo[models.GarageSaleItem](db, orderByCreation)
}

func (r *recordRepo[T]) ListByProfile(ctx context.Context, profileID string, activeOnly bool) ([]T, error) {
	q := r.db.WithContext(ctx).Where("profile_id = ?", profileID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var rows []T
	if err := q.Order(r.order).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recordRepo[T]) Get(ctx context.Context, profileID, id string) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *recordRepo[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recordRepo[T]) Save(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *recordRepo[T]) Delete(ctx context.Context, profileID, id string) error {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, id).
		Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
