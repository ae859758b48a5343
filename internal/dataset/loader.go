package dataset

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/pveller/adventureworks-moltin/internal/flatfile"
	"github.com/pveller/adventureworks-moltin/internal/logging"
)

// LoadError reports the first source file that failed to load. Sibling
// reads already in flight are not cancelled; their results are discarded.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads every source file under dir concurrently and returns the full
// raw dataset once all reads complete. A single file failure makes the
// whole load fail; no partial dataset is ever returned.
func Load(ctx context.Context, dir string) (*Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := &Data{}
	reads := []struct {
		source Source
		into   *[]flatfile.Record
	}{
		{CategorySource, &data.Categories},
		{SubcategorySource, &data.Subcategories},
		{ModelSource, &data.Models},
		{DescriptionSource, &data.Descriptions},
		{DescriptionLinkSource, &data.DescriptionLinks},
		{PhotoSource, &data.Photos},
		{PhotoLinkSource, &data.PhotoLinks},
		{VariantSource, &data.Variants},
		{OrderHeaderSource, &data.OrderHeaders},
		{OrderDetailSource, &data.OrderDetails},
	}

	logger := logging.WithStage("load")

	// Plain group, no derived context: the design joins on all reads and
	// lets siblings of a failed read run to EOF on their own.
	var g errgroup.Group
	for _, read := range reads {
		read := read
		g.Go(func() error {
			records, err := flatfile.ReadFile(filepath.Join(dir, read.source.File), read.source.Dialect)
			if err != nil {
				return &LoadError{File: read.source.File, Err: err}
			}
			logger.Info("read source file", "file", read.source.File, "records", len(records))
			*read.into = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
