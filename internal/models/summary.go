package models

// SummaryBucket represents one grouped value with its row count
type SummaryBucket struct {
	Value string `json:"value" db:"value"`
	Count int    `json:"count" db:"count"`
}

// ChartSummaryResponse represents the filtered rows grouped by hit and
// pitch type
type ChartSummaryResponse struct {
	Total       int             `json:"total"`
	ByHitType   []SummaryBucket `json:"byHitType"`
	ByPitchType []SummaryBucket `json:"byPitchType"`
}
