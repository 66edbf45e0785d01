package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/hojadevida/internal/models"
	"github.com/yoockh/hojadevida/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.PersonalProfile, error)
	// Upsert creates or updates the caller's profile by user_id. The photo
	// column is left untouched on update.
	Upsert(ctx context.Context, p *models.PersonalProfile) error
	SetPhoto(ctx context.Context, userID, photo string) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

var profileUpdateColumns = []string{
	"last_names", "first_names", "nationality", "birth_place", "birth_date",
	"national_id", "sex", "marital_status", "driver_license", "phone", "landline",
	"email", "home_address", "work_address", "website", "profile_description",
	"profile_active", "updated_at",
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.PersonalProfile, error) {
	var p models.PersonalProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *models.PersonalProfile) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(profileUpdateColumns),
		}).
		Create(p).Error
	if err != nil {
		return err
	}
	// on conflict the stored row keeps its own id and photo
	stored, err := r.GetByUserID(ctx, p.UserID)
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

func (r *profileRepo) SetPhoto(ctx context.Context, userID, photo string) error {
	res := r.db.WithContext(ctx).
		Model(&models.PersonalProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"photo": photo, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
