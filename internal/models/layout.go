package models

// Plot geometry the chart is drawn with. The axis ranges and the image
// anchor come from the field drawing the points are projected onto, so
// clients must not rescale them independently.
const (
	ChartWidth      = 800
	ChartHeight     = 700
	ChartMarkerSize = 8

	FieldImageX     = -292.5
	FieldImageY     = 296.25
	FieldImageSizeX = 585.0
	FieldImageSizeY = 315.0
)

// ChartLayout represents the plot frame clients draw the points into
type ChartLayout struct {
	XRange     [2]float64  `json:"xRange"`
	YRange     [2]float64  `json:"yRange"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	MarkerSize int         `json:"markerSize"`
	Background *ChartImage `json:"background,omitempty"`
}

// ChartImage positions the field drawing underneath the points
type ChartImage struct {
	Source  string  `json:"source"` // base64 data URI
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	SizeX   float64 `json:"sizex"`
	SizeY   float64 `json:"sizey"`
	Sizing  string  `json:"sizing"`
	Opacity float64 `json:"opacity"`
	Layer   string  `json:"layer"`
}

// DefaultLayout returns the chart frame without a background image.
func DefaultLayout() ChartLayout {
	return ChartLayout{
		XRange:     [2]float64{-200, 200},
		YRange:     [2]float64{-20, 240},
		Width:      ChartWidth,
		Height:     ChartHeight,
		MarkerSize: ChartMarkerSize,
	}
}

var colorByHitType = map[string]string{
	"ゴロ":   "green",
	"フライ":  "blue",
	"ライナー": "red",
	"バント":  "orange",
}

var symbolByPitchType = map[string]string{
	"ストレート": "circle",
	"カーブ":   "diamond",
	"スライダー": "square",
	"チェンジ":  "triangle-up",
	"フォーク":  "x",
	"不明":    "cross",
	"カット":   "triangle-right",
	"シュート":  "triangle-left",
}

// ColorForHitType returns the marker color for a hit type, gray for
// anything unrecognized.
func ColorForHitType(hitType string) string {
	if c, ok := colorByHitType[hitType]; ok {
		return c
	}
	return "gray"
}

// SymbolForPitchType returns the marker symbol for a pitch type, circle for
// anything unrecognized.
func SymbolForPitchType(pitchType string) string {
	if s, ok := symbolByPitchType[pitchType]; ok {
		return s
	}
	return "circle"
}
