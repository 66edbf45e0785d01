// Package cvpdf renders a personal profile and its active records into a
// single PDF, followed by the pages of every attached PDF certificate.
package cvpdf

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/hojadevida/internal/models"
	"github.com/yoockh/hojadevida/internal/storage"
)

const (
	DefaultFetchTimeout  = 15 * time.Second
	DefaultMaxFetchBytes = 20 << 20
)

// Resume is everything rendered into one document. Records are drawn in
// the order given.
type Resume struct {
	Profile          *models.PersonalProfile
	Experiences      []models.WorkExperience
	Recognitions     []models.Recognition
	Courses          []models.CompletedCourse
	AcademicProducts []models.AcademicProduct
}

type Result struct {
	PDF        []byte
	BasePages  int
	TotalPages int
	Sections   []string
	Embedded   []string
	Skipped    []string
	Outcomes   []EmbedOutcome
}

type Options struct {
	MediaRoot     string
	Remote        storage.Reader
	FetchTimeout  time.Duration
	MaxFetchBytes int64
	TempDir       string
	Styles        *Styles
	Now           func() time.Time
}

type Generator struct {
	resolver Resolver
	remote   storage.Reader
	timeout  time.Duration
	maxBytes int64
	tempDir  string
	styles   Styles
	now      func() time.Time
	log      *logrus.Logger
}

func NewGenerator(opt Options, log *logrus.Logger) *Generator {
	g := &Generator{
		resolver: Resolver{MediaRoot: opt.MediaRoot, Remote: opt.Remote != nil},
		remote:   opt.Remote,
		timeout:  opt.FetchTimeout,
		maxBytes: opt.MaxFetchBytes,
		tempDir:  opt.TempDir,
		styles:   DefaultStyles(),
		now:      opt.Now,
		log:      log,
	}
	if g.timeout <= 0 {
		g.timeout = DefaultFetchTimeout
	}
	if g.maxBytes <= 0 {
		g.maxBytes = DefaultMaxFetchBytes
	}
	if opt.Styles != nil {
		g.styles = *opt.Styles
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.log == nil {
		g.log = logrus.New()
	}
	return g
}

func (g *Generator) Resolver() Resolver { return g.resolver }

// NewFetcher returns a Fetcher bound to the generator's storage and limits.
// The caller owns its Cleanup.
func (g *Generator) NewFetcher(log *logrus.Entry) *Fetcher {
	return &Fetcher{
		remote:   g.remote,
		timeout:  g.timeout,
		maxBytes: g.maxBytes,
		tempDir:  g.tempDir,
		log:      log,
	}
}

// Generate builds the base document and appends certificate pages. Only a
// failure to produce the base document is returned as an error.
func (g *Generator) Generate(ctx context.Context, r Resume) (*Result, error) {
	if r.Profile == nil {
		return nil, fmt.Errorf("cvpdf: resume has no profile")
	}
	log := g.log.WithField("profile_id", r.Profile.ID)

	f := g.NewFetcher(log)
	defer func() {
		if err := f.Cleanup(); err != nil {
			log.WithError(err).Warn("temp file cleanup failed")
		}
	}()

	b := NewBuilder(g.styles, log)
	c := &composer{b: b, fetcher: f, resolver: g.resolver, log: log}
	c.header(ctx, r.Profile)
	c.personalData(r.Profile)
	c.experiences(active(r.Experiences))
	c.recognitions(active(r.Recognitions))
	c.courses(active(r.Courses))
	c.academicProducts(active(r.AcademicProducts))
	c.footer(g.now())

	base, err := b.Render()
	if err != nil {
		return nil, err
	}

	res := &Result{
		PDF:        base,
		BasePages:  b.Pages(),
		TotalPages: b.Pages(),
		Sections:   b.Sections(),
	}
	if queue := b.Queue(); len(queue) > 0 {
		res.PDF, res.Outcomes = embed(ctx, f, base, queue, log)
		for _, o := range res.Outcomes {
			if o.Embedded() {
				res.Embedded = append(res.Embedded, o.Title)
				res.TotalPages += o.Pages
			} else {
				res.Skipped = append(res.Skipped, o.Title)
			}
		}
	}

	log.WithFields(logrus.Fields{
		"pages":    res.TotalPages,
		"embedded": len(res.Embedded),
		"skipped":  len(res.Skipped),
	}).Info("resume generated")
	return res, nil
}
