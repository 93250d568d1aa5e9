package exifmeta_test

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/goprotex/Disaster-Response/internal/media/exifmeta"
)

func TestExtractGarbage(t *testing.T) {
	rec := exifmeta.Extract([]byte("not an image at all"))
	if rec.HasLocation() {
		t.Error("garbage input reported a location")
	}
	if rec.Camera != "" || rec.CaptureTime != "" || len(rec.Tags) != 0 {
		t.Errorf("garbage input produced non-empty record: %+v", rec)
	}
}

func TestExtractJPEGWithoutMetadata(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8)), nil); err != nil {
		t.Fatalf("encode test jpeg: %v", err)
	}

	rec := exifmeta.Extract(buf.Bytes())
	if rec.HasLocation() {
		t.Error("metadata-free jpeg reported a location")
	}
	if rec.CaptureTime != "" {
		t.Errorf("CaptureTime = %q, want empty", rec.CaptureTime)
	}
}

func TestHasLocationRequiresBothCoordinates(t *testing.T) {
	lat, lng := 33.749, -84.388

	cases := []struct {
		name string
		rec  exifmeta.Record
		want bool
	}{
		{"both set", exifmeta.Record{Latitude: &lat, Longitude: &lng}, true},
		{"latitude only", exifmeta.Record{Latitude: &lat}, false},
		{"longitude only", exifmeta.Record{Longitude: &lng}, false},
		{"neither", exifmeta.Record{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rec.HasLocation(); got != tc.want {
				t.Errorf("HasLocation() = %v, want %v", got, tc.want)
			}
		})
	}
}
