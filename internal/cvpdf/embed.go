package cvpdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"
)

var errNoPages = errors.New("cvpdf: document has no pages")

var disableConfigDir sync.Once

func pdfConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// PageCount parses data as a PDF and returns its number of pages.
func PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), pdfConfig())
	if err != nil {
		return 0, fmt.Errorf("cvpdf: page count: %w", err)
	}
	if n == 0 {
		return 0, errNoPages
	}
	return n, nil
}

// EmbedOutcome reports what happened to one queued certificate.
type EmbedOutcome struct {
	Title string
	Pages int
	Err   error
}

func (o EmbedOutcome) Embedded() bool { return o.Err == nil }

// embed appends each fetchable certificate after the base document. A
// certificate that cannot be fetched or parsed is left out. If the merge
// itself fails the base document is kept.
func embed(ctx context.Context, f *Fetcher, base []byte, queue []Certificate, log *logrus.Entry) ([]byte, []EmbedOutcome) {
	outcomes := make([]EmbedOutcome, 0, len(queue))
	sources := []io.ReadSeeker{bytes.NewReader(base)}

	for _, c := range queue {
		o := EmbedOutcome{Title: c.Title}
		fetched, err := f.Fetch(ctx, c.Ref)
		if err == nil {
			o.Pages, err = PageCount(fetched.Data)
		}
		if err != nil {
			o.Err = err
			log.WithError(err).WithField("certificate", c.Title).Warn("certificate skipped")
		} else {
			sources = append(sources, bytes.NewReader(fetched.Data))
		}
		outcomes = append(outcomes, o)
	}

	if len(sources) == 1 {
		return base, outcomes
	}

	var out bytes.Buffer
	if err := api.MergeRaw(sources, &out, false, pdfConfig()); err != nil {
		log.WithError(err).Warn("certificate merge failed, returning base document")
		for i := range outcomes {
			if outcomes[i].Err == nil {
				outcomes[i].Err = fmt.Errorf("cvpdf: merge: %w", err)
				outcomes[i].Pages = 0
			}
		}
		return base, outcomes
	}
	return out.Bytes(), outcomes
}
