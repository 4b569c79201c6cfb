package format

import "strings"

// Payload is the structured result of an address-lookup collaborator. It
// carries the generic display value plus the typed sub-fields the lookup
// service exposes; extraction helpers pick the most specific one available.
type Payload struct {
	// Value is the generic display string for the suggestion.
	Value string `json:"value"`
	// StreetWithType is the street name with its type prefix ("ул Тверская").
	StreetWithType string `json:"street_with_type,omitempty"`
	// House is the house number component, when the suggestion reaches one.
	House string `json:"house,omitempty"`
	// CityDistrictWithType names the intra-city district.
	CityDistrictWithType string `json:"city_district_with_type,omitempty"`
	// AreaWithType names the wider administrative area.
	AreaWithType string `json:"area_with_type,omitempty"`
}

// StreetDisplay extracts the canonical street string: the typed street field
// first, falling back to the generic value. A house number, when present, is
// appended after a comma.
func (p *Payload) StreetDisplay() string {
	if p == nil {
		return ""
	}
	street := strings.TrimSpace(p.StreetWithType)
	if street == "" {
		street = strings.TrimSpace(p.Value)
	}
	if street == "" {
		return ""
	}
	if house := strings.TrimSpace(p.House); house != "" {
		return street + ", " + house
	}
	return street
}

// DistrictDisplay extracts the canonical district string: city district
// first, then the administrative area, then the generic value.
func (p *Payload) DistrictDisplay() string {
	if p == nil {
		return ""
	}
	if district := strings.TrimSpace(p.CityDistrictWithType); district != "" {
		return district
	}
	if area := strings.TrimSpace(p.AreaWithType); area != "" {
		return area
	}
	return strings.TrimSpace(p.Value)
}

// Display extracts the generic display value.
func (p *Payload) Display() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.Value)
}
