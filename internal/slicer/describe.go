package slicer

// Rect is a region rectangle in source-image pixel space.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Description is the machine-readable coordinate description of a slice
// grid. Field names and the nine region-name keys are a compatibility
// surface consumed by downstream game-engine tooling; do not rename them.
type Description struct {
	ImageWidth  int                 `json:"image_width"`
	ImageHeight int                 `json:"image_height"`
	Margins     Margins             `json:"margins"`
	Regions     map[RegionName]Rect `json:"regions"`
}

// Describe builds the coordinate description for the current geometry.
// Pure derivation, no I/O: re-deriving regions from the returned margins
// reproduces the same nine rectangles.
func Describe(geo *Geometry) *Description {
	regions := make(map[RegionName]Rect, len(RegionNames))
	for _, r := range geo.Regions() {
		regions[r.Name] = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}
	return &Description{
		ImageWidth:  geo.Width(),
		ImageHeight: geo.Height(),
		Margins:     geo.Margins(),
		Regions:     regions,
	}
}
