package model

// AddressSource identifies which provider produced an AddressResult.
type AddressSource string

const (
	// SourcePlaces is the Places text-search provider.
	SourcePlaces AddressSource = "places"
	// SourceGeocode is the Geocoding API provider.
	SourceGeocode AddressSource = "geocode"
	// SourceError marks a synthetic result standing in for a failed lookup.
	// Callers treat it as "no usable result", never as a fatal error.
	SourceError AddressSource = "error"
)

// AddressResult is the normalized shape every address provider maps into.
// Latitude/Longitude stay nil when the raw reply carried no usable geometry.
// Results are never persisted directly; a selection is converted into a
// Destination first.
type AddressResult struct {
	PlaceID           string            `json:"place_id,omitempty"`
	DisplayName       string            `json:"display_name"`
	FormattedAddress  string            `json:"formatted_address,omitempty"`
	Latitude          *float64          `json:"lat"`
	Longitude         *float64          `json:"lng"`
	AddressComponents map[string]string `json:"address"`
	Source            AddressSource     `json:"source"`
}

// HasLocation reports whether the result carries usable coordinates.
func (r *AddressResult) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// NewErrorResult builds the synthetic marker returned in place of a failed
// or unconfigured lookup.
func NewErrorResult(displayName string) AddressResult {
	return AddressResult{
		DisplayName:       displayName,
		AddressComponents: map[string]string{},
		Source:            SourceError,
	}
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// Address holds the structured components of a selected destination address.
// Field names follow the Geocoding API component types so the UI can map
// them back without translation.
type Address struct {
	StreetNumber             string `json:"street_number" firestore:"street_number"`
	Route                    string `json:"route" firestore:"route"`
	Locality                 string `json:"locality" firestore:"locality"`
	AdministrativeAreaLevel2 string `json:"administrative_area_level_2" firestore:"administrative_area_level_2"`
	AdministrativeAreaLevel1 string `json:"administrative_area_level_1" firestore:"administrative_area_level_1"`
	Country                  string `json:"country" firestore:"country"`
	PostalCode               string `json:"postal_code" firestore:"postal_code"`
	FormattedAddress         string `json:"formatted_address" firestore:"formatted_address"`
}

// AddressFromResult extracts the structured components of an AddressResult.
func AddressFromResult(res *AddressResult) Address {
	components := res.AddressComponents
	if components == nil {
		components = map[string]string{}
	}
	return Address{
		StreetNumber:             components["street_number"],
		Route:                    components["route"],
		Locality:                 components["locality"],
		AdministrativeAreaLevel2: components["administrative_area_level_2"],
		AdministrativeAreaLevel1: components["administrative_area_level_1"],
		Country:                  components["country"],
		PostalCode:               components["postal_code"],
		FormattedAddress:         res.DisplayName,
	}
}
