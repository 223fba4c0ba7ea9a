package project

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/paraid/internal/clock"
	"github.com/viant/paraid/internal/idgen"
	"github.com/viant/paraid/tracing"
)

// Service reads and writes project files
type Service struct {
	fs afs.Service
}

// Load reads the project file at URL. A missing file yields ErrNotFound, an
// absent or malformed projectId yields ErrInvalidNamespace.
func (s *Service) Load(ctx context.Context, URL string) (project *Project, err error) {
	ctx, span := tracing.StartSpan(ctx, "project.load", map[string]string{"project.url": URL})
	defer func() { span.End(err) }()

	f, err := formatOf(URL)
	if err != nil {
		return nil, err
	}
	URL = normalize(URL)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check project file %s: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %s: %w", URL, err)
	}
	doc := &document{}
	if err = decode(f, data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode project file %s: %w", URL, err)
	}
	if project, err = doc.project(); err != nil {
		return nil, fmt.Errorf("%s: %w", URL, err)
	}
	return project, nil
}

// Save writes project to URL, replacing any existing file.
func (s *Service) Save(ctx context.Context, URL string, project *Project) error {
	if err := project.Validate(); err != nil {
		return err
	}
	f, err := formatOf(URL)
	if err != nil {
		return err
	}
	data, err := encode(f, newDocument(project))
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	URL = normalize(URL)
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save project file %s: %w", URL, err)
	}
	return nil
}

// Init creates a project with a freshly generated namespace at URL. An
// existing project file is never overwritten.
func (s *Service) Init(ctx context.Context, URL, name string) (*Project, error) {
	exists, err := s.fs.Exists(ctx, normalize(URL))
	if err != nil {
		return nil, fmt.Errorf("failed to check project file %s: %w", URL, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrExists, URL)
	}
	createdAt := clock.Now()
	project := &Project{ID: idgen.New(), Name: name, CreatedAt: &createdAt}
	if err = s.Save(ctx, URL, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Locate looks for a project file in dir and each of its parents, returning
// the URL of the first one found.
func (s *Service) Locate(ctx context.Context, dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, candidate := range candidates {
			URL := normalize(filepath.Join(dir, candidate))
			ok, err := s.fs.Exists(ctx, URL)
			if err != nil {
				return "", fmt.Errorf("failed to check project file %s: %w", URL, err)
			}
			if ok {
				return URL, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrNotFound, DefaultLocation, dir)
		}
		dir = parent
	}
}

var candidates = []string{
	DefaultLocation,
	".para/project.yaml",
	".para/project.yml",
}

func normalize(URL string) string {
	return url.Normalize(URL, file.Scheme)
}

// New creates a project service; a nil fs defaults to afs.New().
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
