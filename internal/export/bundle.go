package export

import (
	"context"
	"io"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/piwi3910/tcocompare/internal/model"
)

const bundleConcurrency = 4

// Bundle writes cmp into dir once per format, at most four at a time.
// The returned paths follow the order of formats. An empty formats slice
// writes every format.
func Bundle(ctx context.Context, dir string, cmp model.Comparison, formats []Format) ([]string, error) {
	if len(formats) == 0 {
		formats = AllFormats()
	}
	formats, err := normalizeFormats(formats)
	if err != nil {
		return nil, err
	}

	base := BaseName(cmp)
	paths := make([]string, len(formats))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bundleConcurrency)
	for i, f := range formats {
		path := filepath.Join(dir, f.FileName(base))
		paths[i] = path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := WriteFile(path, func(w io.Writer) error {
				return Write(w, f, cmp)
			})
			if err != nil {
				return goerr.Wrap(err, "failed to write bundle entry",
					goerr.V("format", string(f)), goerr.V("path", path))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// normalizeFormats validates formats and drops repeats, keeping first-seen order.
func normalizeFormats(formats []Format) ([]Format, error) {
	seen := make(map[Format]bool, len(formats))
	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		parsed, err := ParseFormat(string(f))
		if err != nil {
			return nil, err
		}
		if seen[parsed] {
			continue
		}
		seen[parsed] = true
		out = append(out, parsed)
	}
	return out, nil
}
