package models

// Extra is an optional add-on service priced per rental day.
type Extra struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

var Extras = []Extra{
	{ID: "gps", Name: "GPS Navigation", Price: 10},
	{ID: "child-seat", Name: "Child Seat", Price: 15},
	{ID: "insurance", Name: "Premium Insurance", Price: 25},
	{ID: "wifi", Name: "Mobile WiFi Hotspot", Price: 12},
}

func ExtraByID(id string) (Extra, bool) {
	for _, e := range Extras {
		if e.ID == id {
			return e, true
		}
	}
	return Extra{}, false
}
