package models

// Pitch type values as they appear in the source sheets.
const (
	PitchFastball = "ストレート"
	PitchUnknown  = "不明"
)

// PitchRecord represents one batted ball placed on the chart
type PitchRecord struct {
	ID int64 `json:"id" db:"id"`

	// Sheet columns
	Batter    string `json:"batter" db:"batter"`
	PitchType string `json:"pitchType" db:"pitch_type"`
	HitType   string `json:"hitType" db:"hit_type"`
	Memo      string `json:"memo" db:"memo"`
	Game      string `json:"game" db:"game"`                 // file name without the .csv suffix
	Balls     *int   `json:"balls,omitempty" db:"balls"`     // nil when the sheet has no Ball column
	Strikes   *int   `json:"strikes,omitempty" db:"strikes"` // nil when the sheet has no Strike column

	// Derived placement
	X float64 `json:"x" db:"x"`
	Y float64 `json:"y" db:"y"`

	// Render metadata
	Color  string `json:"color" db:"color"`
	Symbol string `json:"symbol" db:"symbol"`
	Label  string `json:"label" db:"label"` // hover text: memo / hit type / pitch type
}

// ChartPointsResponse represents the filtered chart contents
type ChartPointsResponse struct {
	Points []PitchRecord `json:"points"`
	Total  int           `json:"total"`
}
