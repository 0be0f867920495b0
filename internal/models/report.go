package models

import "time"

// LoadReport summarizes one pass over the data directory
type LoadReport struct {
	Files       int       `json:"files"`
	Rows        int       `json:"rows"`
	Dropped     int       `json:"dropped"` // rows whose memo did not decode
	Warnings    []string  `json:"warnings,omitempty"`
	Fingerprint string    `json:"fingerprint"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// DatasetMeta represents the values the chart filters can take
type DatasetMeta struct {
	Batters      []string   `json:"batters"`
	Games        []string   `json:"games"`
	HitTypes     []string   `json:"hitTypes"`
	PitchTypes   []string   `json:"pitchTypes"`
	BallValues   []int      `json:"ballValues"`
	StrikeValues []int      `json:"strikeValues"`
	HasBalls     bool       `json:"hasBalls"`
	HasStrikes   bool       `json:"hasStrikes"`
	Report       LoadReport `json:"report"`
}
