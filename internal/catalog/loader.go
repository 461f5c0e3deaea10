// Package catalog loads the static liturgical catalog from a directory of
// YAML files, one file per category, and flattens it into the referenced
// form the siddur engine consumes.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/luachapp/luach-api/internal/domain/siddur"
)

// Loader errors.
var (
	// ErrNoCatalogFiles is returned when the catalog directory holds no
	// YAML files.
	ErrNoCatalogFiles = errors.New("no catalog files found")

	// ErrDuplicateID is returned when two entries at the same level share
	// an id.
	ErrDuplicateID = errors.New("duplicate catalog id")
)

// File layout: a category header followed by its nested services, buckets,
// and items. The nesting exists only in the authoring format; the loader
// flattens it and fills in the parent references.
type categoryFile struct {
	Category categoryNode  `yaml:"category"`
	Services []serviceNode `yaml:"services"`
}

type categoryNode struct {
	siddur.Entry `yaml:",inline"`
}

type serviceNode struct {
	siddur.Entry `yaml:",inline"`
	Buckets      []bucketNode `yaml:"buckets"`
}

type bucketNode struct {
	siddur.Entry `yaml:",inline"`
	Items        []itemNode `yaml:"items"`
}

type itemNode struct {
	siddur.Entry `yaml:",inline"`
	Tags         map[string]string `yaml:"tags"`
}

// Load reads every *.yaml file in dir into one flat catalog. Children
// inherit their parent's importance and tradition set when they declare
// none of their own. Malformed YAML or invalid entries fail the load;
// reference integrity within a file is guaranteed by the nesting itself.
func Load(dir string) (*siddur.Catalog, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog directory not found: %s", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scanning catalog directory: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCatalogFiles, dir)
	}

	cat := &siddur.Catalog{}
	seen := map[string]string{} // id -> file, for duplicate detection

	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}

		var cf categoryFile
		if err := yaml.Unmarshal(raw, &cf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}

		if err := appendCategory(cat, cf, seen, file); err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	return cat, nil
}

func appendCategory(cat *siddur.Catalog, cf categoryFile, seen map[string]string, file string) error {
	c := siddur.Category{Entry: withDefaults(cf.Category.Entry, siddur.Entry{Importance: siddur.ImportanceCore})}
	if err := checkEntry(c.Entry, seen, file); err != nil {
		return err
	}
	cat.Categories = append(cat.Categories, c)

	for _, sn := range cf.Services {
		s := siddur.Service{Entry: withDefaults(sn.Entry, c.Entry), CategoryID: c.ID}
		if err := checkEntry(s.Entry, seen, file); err != nil {
			return err
		}
		cat.Services = append(cat.Services, s)

		for _, bn := range sn.Buckets {
			b := siddur.Bucket{Entry: withDefaults(bn.Entry, s.Entry), ServiceID: s.ID}
			if err := checkEntry(b.Entry, seen, file); err != nil {
				return err
			}
			cat.Buckets = append(cat.Buckets, b)

			for _, in := range bn.Items {
				i := siddur.Item{
					Entry:    withDefaults(in.Entry, b.Entry),
					BucketID: b.ID,
					Tags:     in.Tags,
				}
				if err := checkEntry(i.Entry, seen, file); err != nil {
					return err
				}
				cat.Items = append(cat.Items, i)
			}
		}
	}

	return nil
}

// withDefaults fills an entry's unset importance and tradition set from its
// parent.
func withDefaults(e, parent siddur.Entry) siddur.Entry {
	if e.Importance == "" {
		e.Importance = parent.Importance
	}
	if len(e.Nusachim) == 0 {
		e.Nusachim = parent.Nusachim
	}
	return e
}

func checkEntry(e siddur.Entry, seen map[string]string, file string) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if prev, ok := seen[e.ID]; ok {
		return fmt.Errorf("%w: %q already defined in %s", ErrDuplicateID, e.ID, prev)
	}
	seen[e.ID] = file
	return nil
}
