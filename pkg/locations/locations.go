package locations

import (
	"context"
	"errors"
	"os"
	"slices"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Location is one selectable dropdown option.
type Location struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Source supplies the selectable locations. List may perform I/O and should
// honor the context.
type Source interface {
	List(ctx context.Context) ([]Location, error)
}

// Sort orders locations by display name using locale-aware collation.
// Plain byte comparison misorders accented place names.
func Sort(locs []Location, tag language.Tag) {
	c := collate.New(tag)
	slices.SortStableFunc(locs, func(a, b Location) int {
		return c.CompareString(a.Name, b.Name)
	})
}

// Static is a fixed, in-memory Source.
type Static struct {
	locs []Location
}

// NewStatic creates a Source over a fixed option list, sorted with the given
// collation language.
func NewStatic(tag language.Tag, locs ...Location) *Static {
	sorted := slices.Clone(locs)
	Sort(sorted, tag)
	return &Static{locs: sorted}
}

// List returns a copy of the options so callers cannot mutate the source.
func (s *Static) List(ctx context.Context) ([]Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.locs), nil
}

// YAMLFile is a Source reading its options from a YAML file once, lazily.
//
// Expected document shape:
//
//	locations:
//	  - code: de
//	    name: Germany
//	  - code: at
//	    name: Austria
type YAMLFile struct {
	path string
	tag  language.Tag

	once sync.Once
	locs []Location
	err  error
}

// NewYAMLFile creates a Source backed by the YAML file at path. The file is
// read on first List and cached for the process lifetime.
func NewYAMLFile(path string, tag language.Tag) *YAMLFile {
	return &YAMLFile{path: path, tag: tag}
}

func (f *YAMLFile) List(ctx context.Context) ([]Location, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.once.Do(func() {
		data, err := os.ReadFile(f.path)
		if err != nil {
			f.err = errors.Join(ErrLoadFailed, err)
			return
		}
		var doc struct {
			Locations []Location `yaml:"locations"`
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			f.err = errors.Join(ErrLoadFailed, err)
			return
		}
		if len(doc.Locations) == 0 {
			f.err = ErrNoLocations
			return
		}
		Sort(doc.Locations, f.tag)
		f.locs = doc.Locations
	})

	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.locs), nil
}
