package exifmeta

import (
	"bytes"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/goprotex/Disaster-Response/internal/media/geo"
)

func init() {
	// Vendor maker-note parsers, so camera fields from common manufacturers
	// decode into the tag bag.
	exif.RegisterParsers(mknote.All...)
}

// Record is the metadata read from a single photo. Latitude and Longitude are
// set together or not at all; both derive from the same GPS tag group.
// CaptureTime is the raw camera string and is never normalized, since its
// format varies by vendor and downstream consumers display it verbatim.
type Record struct {
	Latitude    *float64          `json:"latitude,omitempty"`
	Longitude   *float64          `json:"longitude,omitempty"`
	CaptureTime string            `json:"captureTime,omitempty"`
	Camera      string            `json:"camera,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// HasLocation reports whether the record carries a usable coordinate pair.
func (r Record) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// Extract reads the EXIF segment of an image. A file without metadata, or one
// whose metadata cannot be parsed, yields a zero Record; missing EXIF must
// never block a submission.
func Extract(data []byte) Record {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return Record{}
	}

	rec := Record{Tags: map[string]string{}}
	_ = x.Walk(tagCollector{tags: rec.Tags})
	if len(rec.Tags) == 0 {
		rec.Tags = nil
	}

	if lat, lng, ok := gpsCoordinates(x); ok {
		rec.Latitude = &lat
		rec.Longitude = &lng
	}
	rec.CaptureTime = captureTime(x)
	rec.Camera = stringTag(x, exif.Model)

	return rec
}

// gpsCoordinates requires all four GPS tags (both triples and both hemisphere
// references); partial presence is treated as absence.
func gpsCoordinates(x *exif.Exif) (float64, float64, bool) {
	latDMS, ok := rationalTriple(x, exif.GPSLatitude)
	if !ok {
		return 0, 0, false
	}
	lngDMS, ok := rationalTriple(x, exif.GPSLongitude)
	if !ok {
		return 0, 0, false
	}
	latRef := stringTag(x, exif.GPSLatitudeRef)
	lngRef := stringTag(x, exif.GPSLongitudeRef)
	if latRef == "" || lngRef == "" {
		return 0, 0, false
	}

	return geo.ToDecimalDegrees(latDMS, latRef), geo.ToDecimalDegrees(lngDMS, lngRef), true
}

func rationalTriple(x *exif.Exif, name exif.FieldName) (geo.DMS, bool) {
	tag, err := x.Get(name)
	if err != nil || tag.Count < 3 {
		return geo.DMS{}, false
	}

	var out geo.DMS
	for i := range out {
		num, den, err := tag.Rat2(i)
		if err != nil || den == 0 {
			return geo.DMS{}, false
		}
		out[i] = float64(num) / float64(den)
	}
	return out, true
}

func captureTime(x *exif.Exif) string {
	for _, name := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		if v := stringTag(x, name); v != "" {
			return v
		}
	}
	return ""
}

func stringTag(x *exif.Exif, name exif.FieldName) string {
	tag, err := x.Get(name)
	if err != nil {
		return ""
	}
	v, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.Trim(v, "\x00 ")
}

type tagCollector struct {
	tags map[string]string
}

func (c tagCollector) Walk(name exif.FieldName, tag *tiff.Tag) error {
	c.tags[string(name)] = tag.String()
	return nil
}
