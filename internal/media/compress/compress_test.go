package compress

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
)

func testJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}
	return buf.Bytes()
}

// buildExifJPEG prepends a synthetic APP1 Exif segment to an encoded JPEG,
// the shape a camera-written file has on the wire.
func buildExifJPEG(t *testing.T, payload []byte) []byte {
	t.Helper()
	plain := testJPEG(t, 2400, 1200)

	body := append([]byte("Exif\x00\x00"), payload...)
	size := len(body) + 2
	seg := []byte{0xff, 0xe1, byte(size >> 8), byte(size)}
	seg = append(seg, body...)

	out := make([]byte, 0, len(plain)+len(seg))
	out = append(out, plain[:2]...)
	out = append(out, seg...)
	out = append(out, plain[2:]...)
	return out
}

func TestCompressNeverGrows(t *testing.T) {
	c := New(DefaultOptions(), zerolog.Nop())
	for _, data := range [][]byte{
		testJPEG(t, 64, 64),
		testJPEG(t, 2400, 1200),
	} {
		if out := c.Compress(data); len(out) > len(data) {
			t.Errorf("Compress grew %d bytes to %d", len(data), len(out))
		}
	}
}

func TestCompressCapsLongestEdge(t *testing.T) {
	c := New(Options{MaxSizeMB: 5, MaxEdgePx: 1920}, zerolog.Nop())
	out := c.Compress(testJPEG(t, 2400, 1200))

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode compressed jpeg: %v", err)
	}
	if cfg.Width > 1920 || cfg.Height > 1920 {
		t.Errorf("compressed image is %dx%d, want longest edge <= 1920", cfg.Width, cfg.Height)
	}
}

func TestCompressGarbageReturnsOriginal(t *testing.T) {
	c := New(DefaultOptions(), zerolog.Nop())
	data := []byte("definitely not an image")
	if out := c.Compress(data); !bytes.Equal(out, data) {
		t.Error("garbage input was not returned verbatim")
	}
}

func TestCompressTruncatedJPEGReturnsOriginal(t *testing.T) {
	c := New(DefaultOptions(), zerolog.Nop())
	data := testJPEG(t, 64, 64)[:20]
	if out := c.Compress(data); !bytes.Equal(out, data) {
		t.Error("truncated jpeg was not returned verbatim")
	}
}

func TestCompressKeepsExifSegment(t *testing.T) {
	payload := []byte("II*\x00camera metadata placeholder")
	data := buildExifJPEG(t, payload)
	want := exifSegment(data)
	if want == nil {
		t.Fatal("test fixture has no exif segment")
	}

	c := New(DefaultOptions(), zerolog.Nop())
	out := c.Compress(data)
	if bytes.Equal(out, data) {
		t.Fatal("fixture was not re-encoded; enlarge it to force compression")
	}
	if got := exifSegment(out); !bytes.Equal(got, want) {
		t.Errorf("exif segment after compression = %x, want %x", got, want)
	}

	// The spliced stream must still decode.
	if _, err := jpeg.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("decode spliced jpeg: %v", err)
	}

	// A second pass leaves the segment intact.
	again := c.Compress(out)
	if got := exifSegment(again); !bytes.Equal(got, want) {
		t.Errorf("exif segment after second compression = %x, want %x", got, want)
	}
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}
	return buf.Bytes()
}

// The size guard outranks the edge cap: an oversized PNG is resized only when
// the re-encode actually saves bytes, otherwise the original comes back
// untouched.
func TestCompressPNGSizeGuardBeatsEdgeCap(t *testing.T) {
	c := New(DefaultOptions(), zerolog.Nop())

	t.Run("noisy source shrinks and is capped", func(t *testing.T) {
		// Per-pixel noise keeps the original PNG large, so the smaller
		// resized re-encode wins.
		img := image.NewRGBA(image.Rect(0, 0, 2200, 100))
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < len(img.Pix); i += 4 {
			img.Pix[i] = byte(rng.Intn(256))
			img.Pix[i+1] = byte(rng.Intn(256))
			img.Pix[i+2] = byte(rng.Intn(256))
			img.Pix[i+3] = 0xff
		}
		data := pngBytes(t, img)

		out := c.Compress(data)
		if len(out) >= len(data) {
			t.Fatalf("Compress returned %d bytes for a %d byte source", len(out), len(data))
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(out))
		if err != nil {
			t.Fatalf("decode compressed png: %v", err)
		}
		if cfg.Width > 1920 || cfg.Height > 1920 {
			t.Errorf("compressed png is %dx%d, want longest edge <= 1920", cfg.Width, cfg.Height)
		}
	})

	t.Run("tiny source kept verbatim", func(t *testing.T) {
		// A repeating pattern compresses to a few KB; any resized
		// re-encode is bigger, so the oversized original is kept as is.
		img := image.NewRGBA(image.Rect(0, 0, 2200, 100))
		for i := range img.Pix {
			img.Pix[i] = byte(i * 31)
		}
		data := pngBytes(t, img)

		if out := c.Compress(data); !bytes.Equal(out, data) {
			t.Errorf("Compress rewrote a source whose re-encode cannot save bytes")
		}
	})
}

func TestExifSegmentAbsent(t *testing.T) {
	if seg := exifSegment(testJPEG(t, 16, 16)); seg != nil {
		t.Errorf("exifSegment on plain jpeg = %x, want nil", seg)
	}
	if seg := exifSegment([]byte("no")); seg != nil {
		t.Errorf("exifSegment on short input = %x, want nil", seg)
	}
}

func TestWithExifSegmentNoSource(t *testing.T) {
	encoded := testJPEG(t, 16, 16)
	out := withExifSegment(encoded, testJPEG(t, 16, 16))
	if !bytes.Equal(out, encoded) {
		t.Error("splicing from a source without exif changed the stream")
	}
	if withExifSegment(nil, encoded) != nil {
		t.Error("nil encoded stream must stay nil")
	}
}
