package models

import "time"

// Offer is a volunteer's standing offer of help, plotted alongside requests.
type Offer struct {
	ID           string
	Description  string
	Category     *string
	ContactName  *string
	ContactPhone *string
	GPSLat       *float64
	GPSLng       *float64
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
