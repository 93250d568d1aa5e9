package pipeline_test

import (
	"testing"

	"github.com/goprotex/Disaster-Response/internal/media/exifmeta"
	"github.com/goprotex/Disaster-Response/internal/media/geo"
	"github.com/goprotex/Disaster-Response/internal/media/pipeline"
)

func coord(f float64) *float64 { return &f }

func located(lat, lng float64) exifmeta.Record {
	return exifmeta.Record{Latitude: &lat, Longitude: &lng}
}

func TestResolveLocationUserWins(t *testing.T) {
	records := []exifmeta.Record{located(33.749, -84.388)}

	got := pipeline.ResolveLocation(records, coord(40.7128), coord(-74.006))
	if got == nil {
		t.Fatal("ResolveLocation returned nil, want user candidate")
	}
	if got.Source != geo.SourceUser {
		t.Errorf("source = %q, want %q", got.Source, geo.SourceUser)
	}
	if got.Lat != 40.7128 || got.Lng != -74.006 {
		t.Errorf("candidate = (%f, %f), want user coordinates", got.Lat, got.Lng)
	}
}

func TestResolveLocationExifFallback(t *testing.T) {
	records := []exifmeta.Record{located(33.749, -84.388)}

	got := pipeline.ResolveLocation(records, nil, nil)
	if got == nil {
		t.Fatal("ResolveLocation returned nil, want exif candidate")
	}
	if got.Source != geo.SourceEXIF {
		t.Errorf("source = %q, want %q", got.Source, geo.SourceEXIF)
	}
	if got.Lat != 33.749 || got.Lng != -84.388 {
		t.Errorf("candidate = (%f, %f), want exif coordinates", got.Lat, got.Lng)
	}
}

func TestResolveLocationZeroUserFallsThrough(t *testing.T) {
	records := []exifmeta.Record{located(33.749, -84.388)}

	got := pipeline.ResolveLocation(records, coord(0), coord(0))
	if got == nil || got.Source != geo.SourceEXIF {
		t.Fatalf("ResolveLocation with (0,0) user pair = %+v, want exif candidate", got)
	}
}

func TestResolveLocationPartialUserIgnored(t *testing.T) {
	records := []exifmeta.Record{located(33.749, -84.388)}

	got := pipeline.ResolveLocation(records, coord(40.7128), nil)
	if got == nil || got.Source != geo.SourceEXIF {
		t.Fatalf("ResolveLocation with lone latitude = %+v, want exif candidate", got)
	}
}

func TestResolveLocationFirstLocatedRecord(t *testing.T) {
	records := []exifmeta.Record{
		{},
		located(10, 20),
		located(30, 40),
	}

	got := pipeline.ResolveLocation(records, nil, nil)
	if got == nil || got.Lat != 10 || got.Lng != 20 {
		t.Fatalf("ResolveLocation = %+v, want first located record (10, 20)", got)
	}
}

func TestResolveLocationNothingKnown(t *testing.T) {
	if got := pipeline.ResolveLocation(nil, nil, nil); got != nil {
		t.Fatalf("ResolveLocation(nil, nil, nil) = %+v, want nil", got)
	}
	if got := pipeline.ResolveLocation([]exifmeta.Record{{}}, nil, nil); got != nil {
		t.Fatalf("ResolveLocation with locationless record = %+v, want nil", got)
	}
}
