package routing

// allowedAvoids is the avoid_features whitelist for the driving profiles
// this gateway exposes.
var allowedAvoids = map[string]struct{}{
	"tollways":     {},
	"ferries":      {},
	"highways":     {},
	"steps":        {},
	"fords":        {},
	"pavedroads":   {},
	"unpavedroads": {},
}

// SanitizeAvoids keeps only recognized avoid features, preserving order and
// duplicates. Unknown values are dropped silently; the result is never nil.
func SanitizeAvoids(requested []string) []string {
	out := make([]string, 0, len(requested))
	for _, a := range requested {
		if _, ok := allowedAvoids[a]; ok {
			out = append(out, a)
		}
	}
	return out
}
