package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"

	"github.com/yoockh/hojadevida/internal/cvpdf"
	"github.com/yoockh/hojadevida/internal/models"
	mongorepo "github.com/yoockh/hojadevida/internal/repositories/mongo"
	pgrepo "github.com/yoockh/hojadevida/internal/repositories/postgres"
	"github.com/yoockh/hojadevida/internal/utils"
)

// ResumeGenerator renders a resume into a PDF.
type ResumeGenerator interface {
	Generate(ctx context.Context, r cvpdf.Resume) (*cvpdf.Result, error)
}

// Document is a generated CV ready to be sent to the client.
type Document struct {
	Filename string
	PDF      []byte
	Pages    int
}

type ResumeService interface {
	Generate(ctx context.Context, userID string) (*Document, error)
	Exports(ctx context.Context, userID string, limit int64) ([]models.ExportRecord, error)
}

// ResumeSources are the repositories a resume is assembled from.
type ResumeSources struct {
	Profiles         pgrepo.ProfileRepository
	Experiences      pgrepo.RecordRepository[models.WorkExperience]
	Recognitions     pgrepo.RecordRepository[models.Recognition]
	Courses          pgrepo.RecordRepository[models.CompletedCourse]
	AcademicProducts pgrepo.RecordRepository[models.AcademicProduct]
}

type resumeService struct {
	src     ResumeSources
	gen     ResumeGenerator
	exports mongorepo.ExportRepository
	log     *logrus.Logger
}

// NewResumeService wires the generator. exports may be nil, in which case
// no history is kept.
func NewResumeService(src ResumeSources, gen ResumeGenerator, exports mongorepo.ExportRepository, log *logrus.Logger) ResumeService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &resumeService{src: src, gen: gen, exports: exports, log: log}
}

func (s *resumeService) Generate(ctx context.Context, userID string) (*Document, error) {
	const op = "ResumeService.Generate"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	p, err := s.src.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(op, "profile", err)
	}

	r := cvpdf.Resume{Profile: p}
	if r.Experiences, err = s.src.Experiences.ListByProfile(ctx, p.ID, true); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load experiences", err)
	}
	if r.Recognitions, err = s.src.Recognitions.ListByProfile(ctx, p.ID, true); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load recognitions", err)
	}
	if r.Courses, err = s.src.Courses.ListByProfile(ctx, p.ID, true); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load courses", err)
	}
	if r.AcademicProducts, err = s.src.AcademicProducts.ListByProfile(ctx, p.ID, true); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load academic products", err)
	}

	res, err := s.gen.Generate(ctx, r)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to generate resume", err)
	}

	s.record(ctx, p, res)

	return &Document{
		Filename: ResumeFilename(p),
		PDF:      res.PDF,
		Pages:    res.TotalPages,
	}, nil
}

// record writes the export history entry. Failures are logged only.
func (s *resumeService) record(ctx context.Context, p *models.PersonalProfile, res *cvpdf.Result) {
	if s.exports == nil {
		return
	}
	rec := &models.ExportRecord{
		UserID:      p.UserID,
		ProfileID:   p.ID,
		BasePages:   res.BasePages,
		TotalPages:  res.TotalPages,
		Sections:    res.Sections,
		Embedded:    res.Embedded,
		Skipped:     res.Skipped,
		SizeBytes:   len(res.PDF),
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.exports.Insert(ctx, rec); err != nil {
		s.log.WithError(err).WithField("profile_id", p.ID).Warn("export history write failed")
	}
}

func (s *resumeService) Exports(ctx context.Context, userID string, limit int64) ([]models.ExportRecord, error) {
	const op = "ResumeService.Exports"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if s.exports == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "export history is disabled", nil)
	}
	rows, err := s.exports.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list exports", err)
	}
	return rows, nil
}

// ResumeFilename is "hoja_de_vida_<names>.pdf" with accents stripped.
func ResumeFilename(p *models.PersonalProfile) string {
	var b strings.Builder
	under := false
	for _, r := range norm.NFD.String(strings.ToLower(p.FullName())) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			under = false
		case unicode.Is(unicode.Mn, r):
		default:
			if !under && b.Len() > 0 {
				b.WriteByte('_')
				under = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "_")
	if slug == "" {
		return "hoja_de_vida.pdf"
	}
	return "hoja_de_vida_" + slug + ".pdf"
}
