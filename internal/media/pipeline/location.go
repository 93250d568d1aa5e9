package pipeline

import (
	"github.com/goprotex/Disaster-Response/internal/media/exifmeta"
	"github.com/goprotex/Disaster-Response/internal/media/geo"
)

// ResolveLocation picks the single authoritative coordinate pair for a
// submission. Explicit user input wins over photo metadata: photos may have
// been taken earlier, elsewhere, or had GPS stripped by the device. A user
// pair counts only when both values are present and non-zero. Failing that,
// the first record carrying coordinates wins; candidates are never merged or
// averaged. Nil means no location is known, which is a valid outcome.
func ResolveLocation(records []exifmeta.Record, userLat, userLng *float64) *geo.Candidate {
	if userLat != nil && userLng != nil && *userLat != 0 && *userLng != 0 {
		return &geo.Candidate{Lat: *userLat, Lng: *userLng, Source: geo.SourceUser}
	}

	for _, rec := range records {
		if rec.HasLocation() {
			return &geo.Candidate{Lat: *rec.Latitude, Lng: *rec.Longitude, Source: geo.SourceEXIF}
		}
	}
	return nil
}
