package identifier

import (
	"fmt"
	"strings"
)

// Category names the kind of object an identifier is derived for.
type Category string

const (
	Workflow Category = "workflow"
	Resource Category = "resource"
	Trigger  Category = "trigger"
)

// Categories returns all supported categories.
func Categories() []Category {
	return []Category{Workflow, Resource, Trigger}
}

// ParseCategory converts a case-insensitive name into a Category
func ParseCategory(name string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(name))) {
	case Workflow:
		return Workflow, nil
	case Resource:
		return Resource, nil
	case Trigger:
		return Trigger, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}
