package overpass

// QueryResponse is an Overpass interpreter result.
type QueryResponse struct {
	Elements []Element `json:"elements"`
}

// Element is a single tagged OSM element. Nodes carry their own Lat/Lon;
// ways and relations queried with "out center" carry Center instead.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *Center           `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
