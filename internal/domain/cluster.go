package domain

// GoldenCluster groups one scenic/natural anchor POI with its nearest
// qualifying parking and refreshment amenities. Clusters are derived data,
// recomputed on every scoring pass and never persisted.
type GoldenCluster struct {
	ID          string   `json:"id"`
	Anchor      POI      `json:"anchor"`
	Parking     *POI     `json:"parking,omitempty"`
	Refreshment *POI     `json:"refreshment,omitempty"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons"`
}

// Center is the cluster's representative location (the anchor's position).
func (c GoldenCluster) Center() Coordinate {
	return c.Anchor.Coordinate
}
