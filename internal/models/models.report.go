// FilePath: internal/models/models.report.go
package models

// LocationReport is the stored form of a location update. Latitude and
// longitude are the parsed halves of the submitted "lat,lon" string;
// Time and Date are kept verbatim as opaque labels and never parsed.
type LocationReport struct {
	Latitude  float64  `json:"lat"`
	Longitude float64  `json:"lon"`
	Accuracy  *float64 `json:"acc,omitempty"`
	Time      string   `json:"time"`
	Date      string   `json:"date"`
}

// ConnectionReport is the stored form of a connectivity heartbeat.
type ConnectionReport struct {
	Time string `json:"time"`
	Date string `json:"date"`
}

// LocationUpdate is the inbound payload for POST /update/location.
// Coor carries both coordinates as a single "lat,lon" string, exactly
// as the mobile client submits it.
type LocationUpdate struct {
	Coor string   `json:"coor"`
	Acc  *float64 `json:"acc,omitempty"`
	Time string   `json:"time"`
	Date string   `json:"date"`
}

// ConnectionUpdate is the inbound payload for POST /update/connection.
type ConnectionUpdate struct {
	Time string `json:"time"`
	Date string `json:"date"`
}
