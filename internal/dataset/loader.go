package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yakyulab/spraychart-backend-go/internal/field"
	"github.com/yakyulab/spraychart-backend-go/internal/models"
)

// Load failures that end the whole pass. Individual unreadable files are
// reported as warnings instead.
var (
	ErrNoDataDir      = errors.New("data directory not found")
	ErrNoCSVFiles     = errors.New("no csv files in data directory")
	ErrMissingColumns = errors.New("required columns missing from merged schema")
)

// Sheet column names, matched exactly.
const (
	colBatter    = "Batter"
	colPitchType = "PitchType"
	colHitType   = "HitType"
	colMemo      = "Memo"
	colBall      = "Ball"
	colStrike    = "Strike"
)

var requiredColumns = []string{colBatter, colPitchType, colHitType, colMemo}

// Result carries one fully decoded dataset
type Result struct {
	Rows       []models.PitchRecord
	HasBalls   bool
	HasStrikes bool
	Report     models.LoadReport
}

// Loader reads every scoring sheet in a data directory into one dataset.
// Files are visited in sorted name order and rows draw from a freshly
// seeded RNG, so the same directory contents always produce the same
// chart.
type Loader struct {
	dir    string
	jitter field.Jitter
	seed   int64
	logger *logrus.Logger
}

// NewLoader creates a loader over dir.
func NewLoader(dir string, jitter field.Jitter, seed int64, logger *logrus.Logger) *Loader {
	return &Loader{dir: dir, jitter: jitter, seed: seed, logger: logger}
}

// Fingerprint hashes the current directory listing without reading row
// data, cheap enough to run on every request.
func (l *Loader) Fingerprint() (string, error) {
	files, err := l.listSheets()
	if err != nil {
		return "", err
	}
	return fingerprintFiles(files)
}

// Load reads, decodes and transforms every sheet under the data
// directory. A file that cannot be read is skipped with a warning; rows
// whose memo does not decode are dropped and counted.
func (l *Loader) Load() (*Result, error) {
	files, err := l.listSheets()
	if err != nil {
		return nil, err
	}

	fingerprint, err := fingerprintFiles(files)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint data directory: %w", err)
	}

	var (
		tables   []fileTable
		warnings []string
	)
	for _, path := range files {
		table, err := readSheet(path)
		if err != nil {
			base := filepath.Base(path)
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", base, err))
			l.logger.Warnf("[Loader] Skipping %s: %v", base, err)
			continue
		}
		tables = append(tables, table)
	}

	report := models.LoadReport{
		Files:       len(tables),
		Warnings:    warnings,
		Fingerprint: fingerprint,
		LoadedAt:    time.Now(),
	}

	if len(tables) == 0 {
		l.logger.Warnf("[Loader] No readable csv files in %s", l.dir)
		return &Result{Report: report}, nil
	}

	merged := mergedColumns(tables)
	if missing := missingRequired(merged); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	rng := rand.New(rand.NewSource(l.seed))
	result := &Result{
		HasBalls:   merged[colBall],
		HasStrikes: merged[colStrike],
	}
	for _, t := range tables {
		for _, row := range t.rows {
			memo := t.cell(row, colMemo)
			x, y, ok := field.MemoToXY(memo, l.jitter, rng)
			if !ok {
				report.Dropped++
				continue
			}

			pitchType := t.cell(row, colPitchType)
			hitType := t.cell(row, colHitType)
			result.Rows = append(result.Rows, models.PitchRecord{
				Batter:    t.cell(row, colBatter),
				PitchType: pitchType,
				HitType:   hitType,
				Memo:      memo,
				Game:      t.game,
				Balls:     intCell(t.cell(row, colBall)),
				Strikes:   intCell(t.cell(row, colStrike)),
				X:         x,
				Y:         y,
				Color:     models.ColorForHitType(hitType),
				Symbol:    models.SymbolForPitchType(pitchType),
				Label:     fmt.Sprintf("%s / %s / %s", memo, hitType, pitchType),
			})
		}
	}

	report.Rows = len(result.Rows)
	result.Report = report
	l.logger.Infof("[Loader] Loaded %d rows from %d files (%d dropped, %d skipped)",
		report.Rows, report.Files, report.Dropped, len(warnings))
	return result, nil
}

func (l *Loader) listSheets() ([]string, error) {
	info, err := os.Stat(l.dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNoDataDir, l.dir)
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to list csv files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCSVFiles, l.dir)
	}
	sort.Strings(files)
	return files, nil
}

// fileTable is one sheet read into memory, keyed by its header row.
type fileTable struct {
	game    string
	index   map[string]int
	headers []string
	rows    [][]string
}

// cell returns the raw value of col in row, empty when this sheet lacks
// the column.
func (t fileTable) cell(row []string, col string) string {
	i, ok := t.index[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func readSheet(path string) (fileTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileTable{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fileTable{}, err
	}
	if len(records) == 0 {
		return fileTable{}, errors.New("empty file")
	}

	headers := records[0]
	// Excel exports prepend a BOM to the first header.
	headers[0] = strings.TrimPrefix(headers[0], "\uFEFF")

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[h] = i
	}

	base := filepath.Base(path)
	return fileTable{
		game:    strings.TrimSuffix(base, filepath.Ext(base)),
		index:   index,
		headers: headers,
		rows:    records[1:],
	}, nil
}

// mergedColumns unions the headers of every readable sheet. A column
// missing from one file reads as empty there, which matches how merged
// spreadsheets behave.
func mergedColumns(tables []fileTable) map[string]bool {
	merged := make(map[string]bool)
	for _, t := range tables {
		for _, h := range t.headers {
			merged[h] = true
		}
	}
	return merged
}

func missingRequired(merged map[string]bool) []string {
	var missing []string
	for _, col := range requiredColumns {
		if !merged[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// intCell parses an optional count cell, nil for blanks and non-numbers.
func intCell(v string) *int {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}
