package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/yakyulab/spraychart-backend-go/internal/database"
	"github.com/yakyulab/spraychart-backend-go/internal/models"
)

// PitchRepository handles database operations for chart points
type PitchRepository struct {
	db *sql.DB
}

// NewPitchRepository creates a new pitch repository
func NewPitchRepository(db *sql.DB) *PitchRepository {
	return &PitchRepository{db: db}
}

// ReplaceAll swaps the stored dataset for rows in a single transaction.
func (r *PitchRepository) ReplaceAll(rows []models.PitchRecord) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM "打球記録"`); err != nil {
			return fmt.Errorf("failed to clear chart store: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO "打球記録"
			(batter, pitch_type, hit_type, memo, game, balls, strikes, x, y, color, symbol, label)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range rows {
			_, err := stmt.Exec(
				rec.Batter,
				rec.PitchType,
				rec.HitType,
				rec.Memo,
				rec.Game,
				rec.Balls,
				rec.Strikes,
				rec.X,
				rec.Y,
				rec.Color,
				rec.Symbol,
				rec.Label,
			)
			if err != nil {
				return fmt.Errorf("failed to insert chart row: %w", err)
			}
		}
		return nil
	})
}

// Query retrieves the rows matching filter, in insertion order
func (r *PitchRepository) Query(filter models.ChartFilter) ([]models.PitchRecord, error) {
	conditions, args, matchNone := filterConditions(filter)
	if matchNone {
		return []models.PitchRecord{}, nil
	}

	query := `SELECT id, batter, pitch_type, hit_type, memo, game, balls, strikes, x, y, color, symbol, label
		FROM "打球記録"`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart rows: %w", err)
	}
	defer rows.Close()

	records := []models.PitchRecord{}
	for rows.Next() {
		var rec models.PitchRecord
		err := rows.Scan(
			&rec.ID,
			&rec.Batter,
			&rec.PitchType,
			&rec.HitType,
			&rec.Memo,
			&rec.Game,
			&rec.Balls,
			&rec.Strikes,
			&rec.X,
			&rec.Y,
			&rec.Color,
			&rec.Symbol,
			&rec.Label,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chart row: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Count returns the number of rows matching filter
func (r *PitchRepository) Count(filter models.ChartFilter) (int, error) {
	conditions, args, matchNone := filterConditions(filter)
	if matchNone {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM "打球記録"`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count chart rows: %w", err)
	}
	return count, nil
}

// CountByHitType groups the matching rows by hit type, most frequent first
func (r *PitchRepository) CountByHitType(filter models.ChartFilter) ([]models.SummaryBucket, error) {
	return r.countBy("hit_type", filter)
}

// CountByPitchType groups the matching rows by pitch type, most frequent first
func (r *PitchRepository) CountByPitchType(filter models.ChartFilter) ([]models.SummaryBucket, error) {
	return r.countBy("pitch_type", filter)
}

func (r *PitchRepository) countBy(column string, filter models.ChartFilter) ([]models.SummaryBucket, error) {
	conditions, args, matchNone := filterConditions(filter)
	if matchNone {
		return []models.SummaryBucket{}, nil
	}

	query := fmt.Sprintf(`SELECT %s as value, COUNT(*) as count FROM "打球記録"`, column)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" GROUP BY %s ORDER BY count DESC, value", column)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s counts: %w", column, err)
	}
	defer rows.Close()

	buckets := []models.SummaryBucket{}
	for rows.Next() {
		var b models.SummaryBucket
		if err := rows.Scan(&b.Value, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}

// Batters lists the distinct batter names in the store
func (r *PitchRepository) Batters() ([]string, error) {
	return r.distinct("batter")
}

// Games lists the distinct game tags in the store
func (r *PitchRepository) Games() ([]string, error) {
	return r.distinct("game")
}

// HitTypes lists the distinct hit types in the store
func (r *PitchRepository) HitTypes() ([]string, error) {
	return r.distinct("hit_type")
}

// PitchTypes lists the distinct pitch types in the store
func (r *PitchRepository) PitchTypes() ([]string, error) {
	return r.distinct("pitch_type")
}

// BallValues lists the distinct ball counts recorded in the store
func (r *PitchRepository) BallValues() ([]int, error) {
	return r.distinctInts("balls")
}

// StrikeValues lists the distinct strike counts recorded in the store
func (r *PitchRepository) StrikeValues() ([]int, error) {
	return r.distinctInts("strikes")
}

// distinct returns the sorted distinct values of column, skipping empty
// cells so blank sheet entries never become filter options.
func (r *PitchRepository) distinct(column string) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM "打球記録" WHERE %s != '' ORDER BY %s`,
		column, column, column,
	)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct %s: %w", column, err)
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// distinctInts returns the sorted distinct values of a count column,
// skipping the NULLs left by sheets without that column.
func (r *PitchRepository) distinctInts(column string) ([]int, error) {
	query := fmt.Sprintf(
		`SELECT DISTINCT %s FROM "打球記録" WHERE %s IS NOT NULL ORDER BY %s`,
		column, column, column,
	)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := []int{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan distinct %s: %w", column, err)
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

// filterConditions translates filter into WHERE fragments. matchNone
// reports an explicitly empty hit type selection, which no row satisfies.
func filterConditions(filter models.ChartFilter) (conditions []string, args []interface{}, matchNone bool) {
	if filter.Batter != "" && filter.Batter != "all" {
		conditions = append(conditions, "batter = ?")
		args = append(args, filter.Batter)
	}

	if filter.Game != "" && filter.Game != "all" {
		conditions = append(conditions, "game = ?")
		args = append(args, filter.Game)
	}

	switch filter.Pitch {
	case models.PitchCategoryStraight:
		conditions = append(conditions, "pitch_type = ?")
		args = append(args, models.PitchFastball)
	case models.PitchCategoryOther:
		conditions = append(conditions, "pitch_type != ? AND pitch_type != ?")
		args = append(args, models.PitchFastball, models.PitchUnknown)
	}

	if filter.HitTypes != nil {
		if len(filter.HitTypes) == 0 {
			return nil, nil, true
		}
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(filter.HitTypes)), ", ")
		conditions = append(conditions, fmt.Sprintf("hit_type IN (%s)", placeholders))
		for _, ht := range filter.HitTypes {
			args = append(args, ht)
		}
	}

	if filter.Balls != nil {
		conditions = append(conditions, "balls = ?")
		args = append(args, *filter.Balls)
	}

	if filter.Strikes != nil {
		conditions = append(conditions, "strikes = ?")
		args = append(args, *filter.Strikes)
	}

	return conditions, args, false
}
