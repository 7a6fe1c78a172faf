package catalog

// Stats summarises colour coverage of a catalog.
type Stats struct {
	Total    int     `json:"total"`
	Coloured int     `json:"coloured"`
	Coverage float64 `json:"coverage"`
}

// ComputeStats counts the elements of c and how many have a colour.
// Coverage is a percentage and 0 for an empty catalog.
func ComputeStats(c Catalog) Stats {
	var s Stats
	for _, e := range c.Elements() {
		s.Total++
		if e.Colour != nil {
			s.Coloured++
		}
	}
	if s.Total > 0 {
		s.Coverage = float64(s.Coloured) / float64(s.Total) * 100
	}
	return s
}
