package identifier

import (
	"fmt"

	"github.com/google/uuid"
)

// Deriver computes version 5 identifiers within a fixed namespace.
type Deriver struct {
	namespace uuid.UUID
}

// New creates a deriver scoped to namespace.
func New(namespace uuid.UUID) *Deriver {
	return &Deriver{namespace: namespace}
}

// NewFromString parses namespace in its textual UUID form and creates a deriver.
// The nil UUID is rejected since every project would then share one namespace.
func NewFromString(namespace string) (*Deriver, error) {
	ns, err := ParseNamespace(namespace)
	if err != nil {
		return nil, err
	}
	return New(ns), nil
}

// ParseNamespace parses a namespace in canonical textual form. Surrounding
// whitespace, urn/braced/unhyphenated forms, unknown versions and the nil
// UUID are all rejected.
func ParseNamespace(namespace string) (uuid.UUID, error) {
	if namespace == "" {
		return uuid.Nil, fmt.Errorf("%w: empty", ErrInvalidNamespace)
	}
	if namespace == uuid.Nil.String() {
		return uuid.Nil, fmt.Errorf("%w: nil uuid", ErrInvalidNamespace)
	}
	ns, err := parseCanonical(namespace)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidNamespace, err)
	}
	if v := ns.Version(); v < 1 || v > 8 {
		return uuid.Nil, fmt.Errorf("%w: %q: unsupported version %d", ErrInvalidNamespace, namespace, v)
	}
	return ns, nil
}

// Namespace returns the namespace the deriver is scoped to.
func (d *Deriver) Namespace() uuid.UUID {
	return d.namespace
}

// UUID returns the identifier for label as uuid.UUID.
func (d *Deriver) UUID(label string) uuid.UUID {
	return uuid.NewSHA1(d.namespace, []byte(label))
}

// WorkflowID returns the identifier of a workflow named label.
func (d *Deriver) WorkflowID(label string) string {
	return d.UUID(label).String()
}

// ResourceID returns the identifier of a resource named label.
func (d *Deriver) ResourceID(label string) string {
	return d.UUID(label).String()
}

// TriggerID returns the identifier of a trigger named label.
func (d *Deriver) TriggerID(label string) string {
	return d.UUID(label).String()
}

// Derive returns the identifier of label for the given category.
func (d *Deriver) Derive(category Category, label string) (string, error) {
	switch category {
	case Workflow:
		return d.WorkflowID(label), nil
	case Resource:
		return d.ResourceID(label), nil
	case Trigger:
		return d.TriggerID(label), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
}

// Matches reports whether id was derived from label in this namespace.
func (d *Deriver) Matches(label, id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return parsed == d.UUID(label)
}
