package models

import (
	"fmt"
	"strings"
)

// Pitch filter categories.
const (
	PitchCategoryAll      = "all"
	PitchCategoryStraight = "straight"
	PitchCategoryOther    = "other"
)

// ChartFilter represents filter parameters for querying chart points.
// String filters accept "all" (or empty) to disable themselves; the count
// filters are disabled while nil and are bound by the handler so "all"
// can stand in for absence there too.
type ChartFilter struct {
	Batter   string   `form:"batter"`  // exact batter name
	Game     string   `form:"game"`    // game tag derived from the file name
	Pitch    string   `form:"pitch"`   // all, straight, other
	HitTypes []string `form:"hitType"` // repeatable; absent disables, empty selection matches nothing
	Balls    *int     `form:"-"`       // exact ball count
	Strikes  *int     `form:"-"`       // exact strike count
}

// Normalize fills category defaults and canonicalizes the hit type
// selection: repeated hitType parameters and comma-separated lists are
// equivalent, and blank values are dropped. A query that names the
// parameter but selects nothing keeps its empty, non-nil slice so it
// matches no rows.
func (f *ChartFilter) Normalize() {
	if f.Pitch == "" {
		f.Pitch = PitchCategoryAll
	}
	if f.HitTypes != nil {
		kept := make([]string, 0, len(f.HitTypes))
		for _, v := range f.HitTypes {
			for _, part := range strings.Split(v, ",") {
				if part != "" {
					kept = append(kept, part)
				}
			}
		}
		f.HitTypes = kept
	}
}

// Validate rejects pitch categories outside the known set.
func (f *ChartFilter) Validate() error {
	switch f.Pitch {
	case PitchCategoryAll, PitchCategoryStraight, PitchCategoryOther:
		return nil
	default:
		return fmt.Errorf("unknown pitch category %q", f.Pitch)
	}
}
