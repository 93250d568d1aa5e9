package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/goprotex/Disaster-Response/internal/media/compress"
	"github.com/goprotex/Disaster-Response/internal/media/exifmeta"
	"github.com/goprotex/Disaster-Response/internal/media/sniffer"
)

// ErrNotImage aborts the whole batch: a mixed batch signals a client-side
// error, so partial results are never returned.
var ErrNotImage = errors.New("file is not an image")

// Processed pairs a possibly-compressed file with the metadata read from its
// original bytes.
type Processed struct {
	File File
	Exif exifmeta.Record
}

type Processor struct {
	compressor *compress.Compressor
	log        zerolog.Logger
}

func NewProcessor(compressor *compress.Compressor, log zerolog.Logger) *Processor {
	return &Processor{compressor: compressor, log: log}
}

// Process runs extraction and compression for each file of a batch. Files are
// handled concurrently but the result slice preserves input order: downstream
// location and timestamp arbitration depend on first-file-wins semantics.
// Metadata is always extracted from the pre-compression bytes. A declared
// non-image type fails the call before that file's work starts; results of
// in-flight siblings are discarded.
func (p *Processor) Process(ctx context.Context, files []File) ([]Processed, error) {
	results := make([]Processed, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if !sniffer.IsDeclaredImage(f.ContentType) {
				return fmt.Errorf("file %d (%s): %w", i+1, f.Name, ErrNotImage)
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			exif := exifmeta.Extract(f.Data)

			out := f
			out.Data = p.compressor.Compress(f.Data)
			out.Size = int64(len(out.Data))
			if out.Size < f.Size {
				p.log.Debug().
					Str("file", f.Name).
					Int64("original_bytes", f.Size).
					Int64("stored_bytes", out.Size).
					Msg("photo compressed")
			}

			results[i] = Processed{File: out, Exif: exif}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
