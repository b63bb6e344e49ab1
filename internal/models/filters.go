package models

// CellFilter represents filter parameters for querying cells
type CellFilter struct {
	Carrier        string  `form:"carrier"`
	District       string  `form:"district"`
	Spot           string  `form:"spot"`           // hotspot, coldspot, not significant
	SignalStrength string  `form:"signalStrength"` // Poor, Fair, Good, Excellent
	MinPopulation  float64 `form:"minPopulation"`
	DesiredOnly    bool    `form:"desiredOnly"` // only cells claimed by a desired area
	Limit          int     `form:"limit"`       // max results
}

// AnalysisRequest represents parameters for an analysis run
type AnalysisRequest struct {
	Carrier      string  `json:"carrier" binding:"required"`
	Neighbours   int     `json:"neighbours"`    // KNN k for the hotspot test
	Permutations int     `json:"permutations"`  // permutation count, default from config
	RangeOfArea  float64 `json:"range_of_area"` // DBSCAN eps in projected units
	AreaCount    int     `json:"area_count"`    // bounded mode; 0 means exhaustive
	Exhaustive   bool    `json:"exhaustive"`    // rank every hotspot cell
}

// SweepRequest represents parameters for the optimal-neighbour sweep
type SweepRequest struct {
	Carrier string `form:"carrier" binding:"required"`
	From    int    `form:"from"`
	To      int    `form:"to"`
	Step    int    `form:"step"`
}
