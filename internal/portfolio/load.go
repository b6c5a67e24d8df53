package portfolio

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML content file over the defaults. Keys absent from the
// file keep their default values; lists present in the file replace the
// default lists. An empty path or a missing file yields the defaults.
func Load(path string) (*Profile, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}

	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing content file %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return p, nil
}

// Save writes the profile as YAML.
func (p *Profile) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling content: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing content file: %w", err)
	}
	return nil
}

// Validate checks the profile for content the page cannot render.
func (p *Profile) Validate() error {
	var errs []string
	if strings.TrimSpace(p.Owner.Name) == "" {
		errs = append(errs, "owner.name is required")
	}
	for _, g := range p.Skills {
		for _, s := range g.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Sprintf("skill %q: level %d out of range 0-100", s.Name, s.Level))
			}
		}
	}
	for i, pr := range p.Projects {
		if strings.TrimSpace(pr.Title) == "" {
			errs = append(errs, fmt.Sprintf("projects[%d]: title is required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ProjectFilter narrows Projects.
type ProjectFilter struct {
	Technology   string
	FeaturedOnly bool
}

// FilterProjects returns the projects matching f, in page order.
func (p *Profile) FilterProjects(f ProjectFilter) []Project {
	var out []Project
	for _, pr := range p.Projects {
		if f.FeaturedOnly && !pr.Featured {
			continue
		}
		if f.Technology != "" && !pr.Uses(f.Technology) {
			continue
		}
		out = append(out, pr)
	}
	return out
}

// Link returns the first link of the given kind.
func (p *Profile) Link(kind string) (Link, bool) {
	for _, l := range p.Links {
		if l.Kind == kind {
			return l, true
		}
	}
	return Link{}, false
}

// Store holds the current profile. Readers always see a complete snapshot.
type Store struct {
	current atomic.Pointer[Profile]
}

// NewStore creates a Store holding p.
func NewStore(p *Profile) *Store {
	s := &Store{}
	s.Set(p)
	return s
}

// Get returns the current profile. Callers must not modify it.
func (s *Store) Get() *Profile { return s.current.Load() }

// Set replaces the current profile.
func (s *Store) Set(p *Profile) { s.current.Store(p) }
