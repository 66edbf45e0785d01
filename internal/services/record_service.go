package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/models"
	pgrepo "github.com/yoockh/hojadevida/internal/repositories/postgres"
	"github.com/yoockh/hojadevida/internal/utils"
)

// RecordService manages one kind of child record of the caller's profile.
type RecordService[T any] interface {
	List(ctx context.Context, userID string) ([]T, error)
	Create(ctx context.Context, userID string, form forms.RecordForm[T]) (*T, error)
	Update(ctx context.Context, userID, id string, form forms.RecordForm[T]) (*T, error)
	Delete(ctx context.Context, userID, id string) error
	AttachCertificate(ctx context.Context, userID, id string, up Upload) (*T, error)
}

type recordService[T any, PT interface {
	*T
	models.Record
}] struct {
	kind     string
	profiles pgrepo.ProfileRepository
	repo     pgrepo.RecordRepository[T]
	files    FileService
}

// NewRecordService builds the service for records of type T. kind names the
// record in error messages, e.g. "experience".
func NewRecordService[T any, PT interface {
	*T
	models.Record
}](kind string, profiles pgrepo.ProfileRepository, repo pgrepo.RecordRepository[T], files FileService) RecordService[T] {
	return &recordService[T, PT]{kind: kind, profiles: profiles, repo: repo, files: files}
}

func (s *recordService[T, PT]) profileID(ctx context.Context, op, userID string) (string, error) {
	if userID == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return "", notFoundOr(op, "profile", err)
	}
	return p.ID, nil
}

func (s *recordService[T, PT]) List(ctx context.Context, userID string) ([]T, error) {
	const op = "RecordService.List"

	pid, err := s.profileID(ctx, op, userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByProfile(ctx, pid, false)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list "+s.kind, err)
	}
	return rows, nil
}

func (s *recordService[T, PT]) Create(ctx context.Context, userID string, form forms.RecordForm[T]) (*T, error) {
	const op = "RecordService.Create"

	pid, err := s.profileID(ctx, op, userID)
	if err != nil {
		return nil, err
	}
	rec := new(T)
	if err := form.Apply(rec); err != nil {
		return nil, invalid(op, err)
	}
	PT(rec).Assign(uuid.NewString(), pid)
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create "+s.kind, err)
	}
	return rec, nil
}

func (s *recordService[T, PT]) Update(ctx context.Context, userID, id string, form forms.RecordForm[T]) (*T, error) {
	const op = "RecordService.Update"

	rec, err := s.load(ctx, op, userID, id)
	if err != nil {
		return nil, err
	}
	if err := form.Apply(rec); err != nil {
		return nil, invalid(op, err)
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update "+s.kind, err)
	}
	return rec, nil
}

func (s *recordService[T, PT]) Delete(ctx context.Context, userID, id string) error {
	const op = "RecordService.Delete"

	pid, err := s.profileID(ctx, op, userID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, pid, id); err != nil {
		return notFoundOr(op, s.kind, err)
	}
	return nil
}

func (s *recordService[T, PT]) AttachCertificate(ctx context.Context, userID, id string, up Upload) (*T, error) {
	const op = "RecordService.AttachCertificate"

	rec, err := s.load(ctx, op, userID, id)
	if err != nil {
		return nil, err
	}
	holder, ok := any(rec).(models.CertificateHolder)
	if !ok {
		return nil, utils.E(utils.CodeInvalidArgument, op, s.kind+" does not accept certificates", nil)
	}
	name, err := s.files.SaveCertificate(ctx, userID, up)
	if err != nil {
		return nil, err
	}
	holder.SetCertificate(name)
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save certificate", err)
	}
	return rec, nil
}

func (s *recordService[T, PT]) load(ctx context.Context, op, userID, id string) (*T, error) {
	pid, err := s.profileID(ctx, op, userID)
	if err != nil {
		return nil, err
	}
	rec, err := s.repo.Get(ctx, pid, id)
	if err != nil {
		return nil, notFoundOr(op, s.kind, err)
	}
	return rec, nil
}
