package types

// Obstacle kinds, in increasing precedence during classification.
const (
	KindWay    = "way"
	KindBridge = "bridge"
	KindTunnel = "tunnel"
)

// ObstacleFeature is a height-restricted map element inside a queried
// bounding box. MaxheightM is nil when the raw tag value could not be
// interpreted; such features are excluded whenever a vehicle-height filter
// is active.
type ObstacleFeature struct {
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Maxheight  string   `json:"maxheight"`
	MaxheightM *float64 `json:"maxheight_m"`
	Kind       string   `json:"kind"`
	OsmID      int64    `json:"osm_id"`
}
