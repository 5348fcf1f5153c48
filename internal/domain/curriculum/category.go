package curriculum

import (
	"fmt"
	"strings"
)

// DefaultCategories is the portal-wide category set used when a program does
// not define its own.
var DefaultCategories = []string{"Major", "HSS", "Tech", "Free"}

// CategoryRegistry is a closed, ordered set of category tags.
type CategoryRegistry struct {
	tags  []string
	index map[string]int
}

// NewCategoryRegistry builds a registry. Tags must be non-empty and unique.
func NewCategoryRegistry(tags ...string) (*CategoryRegistry, error) {
	if len(tags) == 0 {
		return nil, fmt.Errorf("category registry needs at least one tag")
	}

	r := &CategoryRegistry{
		tags:  make([]string, 0, len(tags)),
		index: make(map[string]int, len(tags)),
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return nil, fmt.Errorf("empty category tag")
		}
		if _, dup := r.index[tag]; dup {
			return nil, fmt.Errorf("duplicate category tag %q", tag)
		}
		r.index[tag] = len(r.tags)
		r.tags = append(r.tags, tag)
	}
	return r, nil
}

// MustCategoryRegistry is NewCategoryRegistry for package-level fixtures.
func MustCategoryRegistry(tags ...string) *CategoryRegistry {
	r, err := NewCategoryRegistry(tags...)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether tag is registered.
func (r *CategoryRegistry) Contains(tag string) bool {
	_, ok := r.index[tag]
	return ok
}

// Tags returns the tags in registration order.
func (r *CategoryRegistry) Tags() []string {
	out := make([]string, len(r.tags))
	copy(out, r.tags)
	return out
}
