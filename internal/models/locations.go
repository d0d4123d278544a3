package models

import "strings"

type LocationType string

const (
	LocationAirport LocationType = "airport"
	LocationCity    LocationType = "city"
	LocationRailway LocationType = "railway"
)

// Location is a pickup/drop-off point. The catalog is static; bookings
// reference locations by id.
type Location struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Type            LocationType `json:"type"`
	Address         string       `json:"address"`
	Hours           string       `json:"hours"`
	TwentyFourSeven bool         `json:"twentyFourSeven,omitempty"`
	Latitude        float64      `json:"lat,omitempty"`
	Longitude       float64      `json:"lng,omitempty"`
}

var Locations = []Location{
	{
		ID: "hobart-airport", Name: "Hobart Airport", Type: LocationAirport,
		Address: "Strachan Street, Cambridge, TAS 7170",
		Hours:   "6:00 AM - 10:00 PM", TwentyFourSeven: true,
		Latitude: -42.8361, Longitude: 147.5103,
	},
	{
		ID: "launceston-airport", Name: "Launceston Airport", Type: LocationAirport,
		Address: "201 Evandale Road, Western Junction, TAS 7212",
		Hours:   "6:00 AM - 10:00 PM", TwentyFourSeven: true,
		Latitude: -41.5453, Longitude: 147.2144,
	},
	{
		ID: "hobart", Name: "Hobart CBD", Type: LocationCity,
		Address: "123 Elizabeth Street, Hobart, TAS 7000",
		Hours:   "8:00 AM - 6:00 PM",
		Latitude: -42.8821, Longitude: 147.3272,
	},
	{
		ID: "launceston", Name: "Launceston CBD", Type: LocationCity,
		Address: "45 Brisbane Street, Launceston, TAS 7250",
		Hours:   "8:00 AM - 6:00 PM",
		Latitude: -41.4332, Longitude: 147.1377,
	},
	{
		ID: "devonport", Name: "Devonport City Centre", Type: LocationCity,
		Address: "78 Rooke Street, Devonport, TAS 7310",
		Hours:   "8:00 AM - 5:30 PM",
		Latitude: -41.1789, Longitude: 146.3503,
	},
	{
		ID: "hobart-terminal", Name: "Hobart Bus Terminal", Type: LocationRailway,
		Address: "199 Collins Street, Hobart, TAS 7000",
		Hours:   "7:00 AM - 7:00 PM",
		Latitude: -42.8826, Longitude: 147.3257,
	},
	{
		ID: "launceston-terminal", Name: "Launceston Transit Centre", Type: LocationRailway,
		Address: "St John Street, Launceston, TAS 7250",
		Hours:   "7:00 AM - 7:00 PM",
		Latitude: -41.4369, Longitude: 147.1394,
	},
}

func LocationByID(id string) (Location, bool) {
	for _, loc := range Locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return Location{}, false
}

func LocationsByType(t LocationType) []Location {
	out := []Location{}
	for _, loc := range Locations {
		if loc.Type == t {
			out = append(out, loc)
		}
	}
	return out
}

func SearchLocations(query string) []Location {
	if query == "" {
		return Locations
	}
	q := strings.ToLower(query)
	out := []Location{}
	for _, loc := range Locations {
		if strings.Contains(strings.ToLower(loc.Name), q) || strings.Contains(strings.ToLower(loc.Address), q) {
			out = append(out, loc)
		}
	}
	return out
}
