package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viant/paraid/identifier"
)

// DefaultLocation is the project file location relative to the project root.
const DefaultLocation = ".para/project.json"

// Project represents project configuration.
type Project struct {
	ID        uuid.UUID
	Name      string
	CreatedAt *time.Time
}

// Deriver returns an identifier deriver scoped to the project namespace.
func (p *Project) Deriver() *identifier.Deriver {
	return identifier.New(p.ID)
}

// Validate returns an error when the project carries no usable namespace.
func (p *Project) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: project was nil", ErrInvalidNamespace)
	}
	if p.ID == uuid.Nil {
		return fmt.Errorf("%w: projectId was empty", ErrInvalidNamespace)
	}
	return nil
}

// document is the on-disk representation.
type document struct {
	ProjectID string     `json:"projectId" yaml:"projectId"`
	Name      string     `json:"name,omitempty" yaml:"name,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

func (d *document) project() (*Project, error) {
	ns, err := identifier.ParseNamespace(expandEnvExpr(d.ProjectID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNamespace, err)
	}
	return &Project{ID: ns, Name: d.Name, CreatedAt: d.CreatedAt}, nil
}

func newDocument(p *Project) *document {
	return &document{ProjectID: p.ID.String(), Name: p.Name, CreatedAt: p.CreatedAt}
}
