package geo

// DMS holds a sexagesimal angle as degrees, minutes, seconds. The array type
// makes a wrong-length triple impossible to construct.
type DMS [3]float64

// ToDecimalDegrees converts a DMS triple and its hemisphere reference into
// signed decimal degrees. South and west references negate the result. No
// range validation is performed; that is the caller's job.
func ToDecimalDegrees(dms DMS, ref string) float64 {
	decimal := dms[0] + dms[1]/60 + dms[2]/3600
	if ref == "S" || ref == "W" {
		decimal = -decimal
	}
	return decimal
}

// Provenance records where a resolved coordinate pair came from.
type Provenance string

const (
	SourceUser Provenance = "user"
	SourceEXIF Provenance = "exif"
)

// Candidate is a single plottable coordinate pair with its provenance.
type Candidate struct {
	Lat    float64    `json:"lat"`
	Lng    float64    `json:"lng"`
	Source Provenance `json:"source"`
}
