package cvpdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/hojadevida/internal/storage"
)

var (
	ErrNoSource = errors.New("cvpdf: file has no usable source")
	ErrTooLarge = errors.New("cvpdf: file exceeds fetch size limit")
	ErrEmpty    = errors.New("cvpdf: file is empty")
)

// FileRef points at a stored upload. Path is a local file that may or may
// not exist; Key is a blob storage object name. Either may be empty.
type FileRef struct {
	Name string
	Path string
	Key  string
}

func (r FileRef) IsZero() bool { return r.Path == "" && r.Key == "" }

// BaseName is the file name shown in the document.
func (r FileRef) BaseName() string { return path.Base(filepath.ToSlash(r.Name)) }

// Resolver turns stored file names into FileRefs.
type Resolver struct {
	// MediaRoot is the directory local uploads live in. Empty disables the local path.
	MediaRoot string
	// Remote reports whether stored names are also blob storage keys.
	Remote bool
}

func (r Resolver) Resolve(name string) FileRef {
	clean, err := storage.CleanName(name)
	if err != nil {
		return FileRef{}
	}
	ref := FileRef{Name: clean}
	if r.MediaRoot != "" {
		ref.Path = filepath.Join(r.MediaRoot, filepath.FromSlash(clean))
	}
	if r.Remote {
		ref.Key = clean
	}
	return ref
}

// Fetched is a file copied to a temporary location.
type Fetched struct {
	Path string
	Data []byte
}

// Fetcher reads FileRefs and owns the temporary copies it makes.
// Not safe for concurrent use; one Fetcher serves one generation.
type Fetcher struct {
	remote   storage.Reader
	timeout  time.Duration
	maxBytes int64
	tempDir  string
	log      *logrus.Entry

	temps []string
}

func (f *Fetcher) Fetch(ctx context.Context, ref FileRef) (*Fetched, error) {
	if ref.IsZero() {
		return nil, ErrNoSource
	}

	data, err := f.read(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	tmp, err := os.CreateTemp(f.tempDir, "cv-*"+strings.ToLower(filepath.Ext(ref.Name)))
	if err != nil {
		return nil, fmt.Errorf("cvpdf: create temp file: %w", err)
	}
	f.temps = append(f.temps, tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("cvpdf: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("cvpdf: close temp file: %w", err)
	}
	return &Fetched{Path: tmp.Name(), Data: data}, nil
}

// read tries the local file first and falls back to blob storage.
func (f *Fetcher) read(ctx context.Context, ref FileRef) ([]byte, error) {
	if ref.Path != "" {
		if st, err := os.Stat(ref.Path); err == nil && st.Mode().IsRegular() {
			if st.Size() > f.maxBytes {
				return nil, ErrTooLarge
			}
			data, err := os.ReadFile(ref.Path)
			if err == nil {
				return data, nil
			}
			f.log.WithError(err).WithField("path", ref.Path).Debug("local read failed, trying storage")
		}
	}

	if ref.Key == "" || f.remote == nil {
		return nil, ErrNoSource
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	rc, err := f.remote.Open(ctx, ref.Key)
	if err != nil {
		return nil, fmt.Errorf("cvpdf: open %s: %w", ref.Key, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("cvpdf: read %s: %w", ref.Key, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, ErrTooLarge
	}
	return data, nil
}

// TempFiles lists the temporary files created so far.
func (f *Fetcher) TempFiles() []string {
	return append([]string(nil), f.temps...)
}

// Cleanup removes every temporary file. It is safe to call more than once.
func (f *Fetcher) Cleanup() error {
	var errs []error
	for _, p := range f.temps {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	f.temps = nil
	return errors.Join(errs...)
}
