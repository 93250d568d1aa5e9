package compress

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/goprotex/Disaster-Response/internal/media/sniffer"
)

// Options bound the storage footprint of one photo.
type Options struct {
	MaxSizeMB float64
	MaxEdgePx int
}

func DefaultOptions() Options {
	return Options{MaxSizeMB: 5.0, MaxEdgePx: 1920}
}

// jpegQualities are tried in order until the encoded file fits the budget.
var jpegQualities = []int{85, 75, 65, 55, 45}

type Compressor struct {
	opts Options
	log  zerolog.Logger
}

func New(opts Options, log zerolog.Logger) *Compressor {
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = DefaultOptions().MaxSizeMB
	}
	if opts.MaxEdgePx <= 0 {
		opts.MaxEdgePx = DefaultOptions().MaxEdgePx
	}
	return &Compressor{opts: opts, log: log}
}

// Compress re-encodes a photo to fit the configured byte budget, capping the
// longest edge and preserving the original EXIF segment where the format
// allows. Compression never fails a submission: any decode or encode problem
// returns the original bytes untouched, and the result is never larger than
// the input. Metadata extraction must read the pre-compression bytes; the
// output here is for storage only.
func (c *Compressor) Compress(data []byte) []byte {
	kind, err := sniffer.DetectHead(data)
	if err != nil {
		c.log.Debug().Err(err).Msg("compress: unrecognized format, keeping original")
		return data
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		c.log.Debug().Err(err).Str("format", string(kind.Type)).Msg("compress: decode failed, keeping original")
		return data
	}

	bounds := src.Bounds()
	if longest := max(bounds.Dx(), bounds.Dy()); longest > c.opts.MaxEdgePx {
		src = imaging.Fit(src, c.opts.MaxEdgePx, c.opts.MaxEdgePx, imaging.Lanczos)
	}

	budget := int(c.opts.MaxSizeMB * float64(1<<20))

	var out []byte
	switch kind.Type {
	case sniffer.TypeJPEG:
		out = encodeJPEGWithin(src, budget)
		out = withExifSegment(out, data)
	case sniffer.TypePNG:
		out = encodePNG(src)
	default:
		// GIF and WebP re-encodes drop animation frames; store as received.
		return data
	}

	if out == nil || len(out) >= len(data) {
		return data
	}
	return out
}

func encodeJPEGWithin(src image.Image, budget int) []byte {
	var best []byte
	for _, quality := range jpegQualities {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, src, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil
		}
		best = buf.Bytes()
		if buf.Len() <= budget {
			break
		}
	}
	return best
}

func encodePNG(src image.Image) []byte {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.PNG); err != nil {
		return nil
	}
	return buf.Bytes()
}
