package models

import (
	"time"

	"github.com/goprotex/Disaster-Response/internal/media/exifmeta"
)

type Category string

const (
	CategoryMeals     Category = "Meals"
	CategoryWater     Category = "Water"
	CategoryEquipment Category = "Equipment"
	CategoryShelter   Category = "Shelter"
	CategoryMedical   Category = "Medical"
	CategoryOther     Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMeals, CategoryWater, CategoryEquipment, CategoryShelter, CategoryMedical, CategoryOther:
		return true
	}
	return false
}

type Urgency string

const (
	UrgencyLow    Urgency = "Low"
	UrgencyMedium Urgency = "Medium"
	UrgencyHigh   Urgency = "High"
)

func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// HeatWeight maps urgency to heatmap intensity. Total over all inputs;
// anything outside the enum weighs the same as Low.
func (u Urgency) HeatWeight() float64 {
	switch u {
	case UrgencyHigh:
		return 1.0
	case UrgencyMedium:
		return 0.6
	default:
		return 0.3
	}
}

type RequestStatus string

const (
	StatusOpen      RequestStatus = "Open"
	StatusClaimed   RequestStatus = "Claimed"
	StatusFulfilled RequestStatus = "Fulfilled"
)

// Request is one aid request as stored. New requests always start Open.
type Request struct {
	ID              string
	Title           string
	Description     *string
	Category        Category
	Urgency         Urgency
	Status          RequestStatus
	ContactName     *string
	ContactPhone    *string
	IsContactShared bool
	PhotoURLs       []string
	ExifData        []exifmeta.Record
	GPSLat          *float64
	GPSLng          *float64
	PhotoTakenTime  *string
	CreatedBy       string
	ClaimedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
