package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/yoockh/hojadevida/internal/cache"
	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/models"
	pgrepo "github.com/yoockh/hojadevida/internal/repositories/postgres"
	"github.com/yoockh/hojadevida/internal/utils"
)

type ProfileService interface {
	GetMe(ctx context.Context, userID string) (*models.PersonalProfile, error)
	Save(ctx context.Context, userID string, form *forms.ProfileForm) (*models.PersonalProfile, error)
	SetPhoto(ctx context.Context, userID string, up Upload) (*models.PersonalProfile, error)
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	files    FileService
	cache    cache.Cache
	ttl      time.Duration
	log      *logrus.Logger
}

func NewProfileService(profiles pgrepo.ProfileRepository, files FileService, c cache.Cache, ttl time.Duration, log *logrus.Logger) ProfileService {
	if c == nil {
		c = cache.Nop{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &profileService{profiles: profiles, files: files, cache: c, ttl: ttl, log: log}
}

func (s *profileService) GetMe(ctx context.Context, userID string) (*models.PersonalProfile, error) {
	const op = "ProfileService.GetMe"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	p, err := cache.ReadThrough(ctx, s.cache, cache.ProfileKey(userID), s.ttl,
		func(ctx context.Context) (*models.PersonalProfile, error) {
			return s.profiles.GetByUserID(ctx, userID)
		},
		func(what string, err error) {
			s.log.WithError(err).WithField("user_id", userID).Warn("profile cache " + what + " failed")
		})
	if err != nil {
		return nil, notFoundOr(op, "profile", err)
	}
	return p, nil
}

func (s *profileService) Save(ctx context.Context, userID string, form *forms.ProfileForm) (*models.PersonalProfile, error) {
	const op = "ProfileService.Save"

	if userID == "" || form == nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and form are required", nil)
	}

	p := &models.PersonalProfile{ID: uuid.NewString(), UserID: userID}
	if err := form.Apply(p); err != nil {
		return nil, invalid(op, err)
	}
	p.UpdatedAt = time.Now().UTC()
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	s.invalidate(ctx, userID)
	return p, nil
}

func (s *profileService) SetPhoto(ctx context.Context, userID string, up Upload) (*models.PersonalProfile, error) {
	const op = "ProfileService.SetPhoto"

	if _, err := s.profiles.GetByUserID(ctx, userID); err != nil {
		return nil, notFoundOr(op, "profile", err)
	}
	name, err := s.files.SavePhoto(ctx, userID, up)
	if err != nil {
		return nil, err
	}
	if err := s.profiles.SetPhoto(ctx, userID, name); err != nil {
		return nil, notFoundOr(op, "profile", err)
	}
	s.invalidate(ctx, userID)

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(op, "profile", err)
	}
	return p, nil
}

func (s *profileService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Del(ctx, cache.ProfileKey(userID)); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("profile cache invalidation failed")
	}
}
