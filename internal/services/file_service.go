package services

import (
	"bufio"
	"context"
	"io"
	"path"

	"github.com/google/uuid"
	"github.com/yoockh/hojadevida/internal/forms"
	"github.com/yoockh/hojadevida/internal/storage"
	"github.com/yoockh/hojadevida/internal/utils"
)

// Upload is one file received from a client.
type Upload struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type FileService interface {
	// SaveCertificate stores a PDF certificate and returns its stored name.
	SaveCertificate(ctx context.Context, userID string, up Upload) (string, error)
	// SavePhoto stores a JPEG or PNG profile photo and returns its stored name.
	SavePhoto(ctx context.Context, userID string, up Upload) (string, error)
}

type fileService struct {
	uploader storage.Uploader
}

func NewFileService(uploader storage.Uploader) FileService {
	return &fileService{uploader: uploader}
}

const sniffLen = 512

func (s *fileService) SaveCertificate(ctx context.Context, userID string, up Upload) (string, error) {
	const op = "FileService.SaveCertificate"

	if userID == "" || up.Body == nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id and file are required", nil)
	}
	br := bufio.NewReaderSize(up.Body, sniffLen)
	head, _ := br.Peek(sniffLen)
	if err := forms.CheckCertificate(up.Filename, head, up.Size); err != nil {
		return "", invalid(op, err)
	}

	object := path.Join("certificates", userID, uuid.NewString()+".pdf")
	return s.store(ctx, op, object, "application/pdf", io.LimitReader(br, forms.MaxCertificateBytes))
}

func (s *fileService) SavePhoto(ctx context.Context, userID string, up Upload) (string, error) {
	const op = "FileService.SavePhoto"

	if userID == "" || up.Body == nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id and file are required", nil)
	}
	br := bufio.NewReaderSize(up.Body, sniffLen)
	head, _ := br.Peek(sniffLen)
	ct, err := forms.CheckPhoto(head, up.Size)
	if err != nil {
		return "", invalid(op, err)
	}

	ext := ".jpg"
	if ct == "image/png" {
		ext = ".png"
	}
	object := path.Join("photos", userID, uuid.NewString()+ext)
	return s.store(ctx, op, object, ct, io.LimitReader(br, forms.MaxPhotoBytes))
}

func (s *fileService) store(ctx context.Context, op, object, contentType string, r io.Reader) (string, error) {
	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}
	name, err := s.uploader.Upload(ctx, object, contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}
	return name, nil
}
