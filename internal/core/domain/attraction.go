package domain

import (
	"fmt"
	"math"
)

type Attraction struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
}

// DefaultNearestLimit is how many places Nearest returns when no limit is given.
const DefaultNearestLimit = 5

func ValidateLocation(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return ErrInvalidLocation
	}
	return nil
}

// SquaredDistance compares places on the plane of their coordinates. It is
// only good for ordering nearby points, not for measuring.
func (a Attraction) SquaredDistance(lat, lon float64) float64 {
	dLat := a.Latitude - lat
	dLon := a.Longitude - lon
	return dLat*dLat + dLon*dLon
}

func (a Attraction) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.Category)
}

// DefaultAttractions is the fixed directory shipped with the application.
func DefaultAttractions() []Attraction {
	return []Attraction{
		{Name: "City Central Park", Latitude: 37.7749, Longitude: -122.4194, Description: "A large urban park with walking trails and gardens.", Category: "Park", Address: "123 Park Ave", Phone: "555-0101"},
		{Name: "Mindful Wellness Center", Latitude: 37.7750, Longitude: -122.4200, Description: "Offers yoga, meditation, and therapy sessions.", Category: "Wellness", Address: "456 Wellness Blvd", Phone: "555-0102"},
		{Name: "Community Health Clinic", Latitude: 37.7760, Longitude: -122.4210, Description: "Provides general health and mental health services.", Category: "Clinic", Address: "789 Health St", Phone: "555-0103"},
		{Name: "Serene Lakeside Trail", Latitude: 37.8000, Longitude: -122.4300, Description: "Peaceful trail for walking and reflection by the lake.", Category: "Park", Address: "101 Lake Rd", Phone: "N/A"},
		{Name: "The Quiet Library", Latitude: 37.7900, Longitude: -122.4100, Description: "A calm place for reading and study.", Category: "Quiet Space", Address: "202 Book St", Phone: "555-0104"},
		{Name: "Art Therapy Studio", Latitude: 37.7850, Longitude: -122.4150, Description: "Creative space for therapeutic art.", Category: "Therapy", Address: "303 Creative Ln", Phone: "555-0105"},
	}
}
