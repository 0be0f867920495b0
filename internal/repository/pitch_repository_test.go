package repository

import (
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakyulab/spraychart-backend-go/internal/database"
	"github.com/yakyulab/spraychart-backend-go/internal/models"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func intp(n int) *int { return &n }

// fixtureRows covers every filter dimension: three batters plus one blank,
// two games, fastball/offspeed/unknown pitches, all four hit types, and
// both present and absent counts.
func fixtureRows() []models.PitchRecord {
	return []models.PitchRecord{
		{Batter: "山田", PitchType: "ストレート", HitType: "ゴロ", Memo: "M4", Game: "game1", Balls: intp(1), Strikes: intp(2), X: -8.11, Y: 123.88, Color: "green", Symbol: "circle", Label: "M4 / ゴロ / ストレート"},
		{Batter: "山田", PitchType: "カーブ", HitType: "フライ", Memo: "N3", Game: "game1", X: 2.88, Y: 87.97, Color: "blue", Symbol: "diamond", Label: "N3 / フライ / カーブ"},
		{Batter: "佐藤", PitchType: "不明", HitType: "ライナー", Memo: "S5", Game: "game2", Balls: intp(0), Strikes: intp(0), X: 85.77, Y: 145.09, Color: "red", Symbol: "cross", Label: "S5 / ライナー / 不明"},
		{Batter: "山田", PitchType: "ストレート", HitType: "バント", Memo: "K2", Game: "game2", Balls: intp(3), Strikes: intp(1), X: -13.54, Y: 51.21, Color: "orange", Symbol: "circle", Label: "K2 / バント / ストレート"},
		{Batter: "鈴木", PitchType: "シュート", HitType: "ゴロ", Memo: "T6", Game: "game1", X: 123.88, Y: 173.28, Color: "green", Symbol: "triangle-left", Label: "T6 / ゴロ / シュート"},
		{Batter: "", PitchType: "不明", HitType: "フライ", Memo: "O3", Game: "game2", Balls: intp(2), Strikes: intp(2), X: 12.66, Y: 87.58, Color: "blue", Symbol: "cross", Label: "O3 / フライ / 不明"},
	}
}

func newTestRepo(t *testing.T) *PitchRepository {
	t.Helper()
	db, err := database.Open(database.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewPitchRepository(db)
	require.NoError(t, repo.ReplaceAll(fixtureRows()))
	return repo
}

func memos(records []models.PitchRecord) []string {
	out := []string{}
	for _, r := range records {
		out = append(out, r.Memo)
	}
	return out
}

func TestQueryNoFilter(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.Query(models.ChartFilter{Pitch: models.PitchCategoryAll})
	require.NoError(t, err)
	assert.Equal(t, []string{"M4", "N3", "S5", "K2", "T6", "O3"}, memos(got),
		"insertion order must survive the store round trip")

	// Stored cells come back as inserted, including the optional counts.
	first := got[0]
	assert.Equal(t, "山田", first.Batter)
	assert.Equal(t, -8.11, first.X)
	assert.Equal(t, 123.88, first.Y)
	assert.Equal(t, "green", first.Color)
	assert.Equal(t, "circle", first.Symbol)
	assert.Equal(t, "M4 / ゴロ / ストレート", first.Label)
	require.NotNil(t, first.Balls)
	assert.Equal(t, 1, *first.Balls)
	assert.Nil(t, got[1].Balls, "a NULL count must scan back as nil")
}

func TestQueryFilters(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		name   string
		filter models.ChartFilter
		want   []string
	}{
		{"batter exact", models.ChartFilter{Batter: "山田"}, []string{"M4", "N3", "K2"}},
		{"batter all keyword", models.ChartFilter{Batter: "all"}, []string{"M4", "N3", "S5", "K2", "T6", "O3"}},
		{"batter unknown", models.ChartFilter{Batter: "高橋"}, []string{}},
		{"game exact", models.ChartFilter{Game: "game2"}, []string{"S5", "K2", "O3"}},
		{"pitch straight", models.ChartFilter{Pitch: models.PitchCategoryStraight}, []string{"M4", "K2"}},
		{"pitch other excludes fastball and unknown", models.ChartFilter{Pitch: models.PitchCategoryOther}, []string{"N3", "T6"}},
		{"hit types absent", models.ChartFilter{}, []string{"M4", "N3", "S5", "K2", "T6", "O3"}},
		{"hit types one", models.ChartFilter{HitTypes: []string{"ゴロ"}}, []string{"M4", "T6"}},
		{"hit types several", models.ChartFilter{HitTypes: []string{"ゴロ", "バント"}}, []string{"M4", "K2", "T6"}},
		{"hit types empty selection", models.ChartFilter{HitTypes: []string{}}, []string{}},
		{"balls exact", models.ChartFilter{Balls: intp(1)}, []string{"M4"}},
		{"balls zero is not null", models.ChartFilter{Balls: intp(0)}, []string{"S5"}},
		{"strikes exact", models.ChartFilter{Strikes: intp(2)}, []string{"M4", "O3"}},
		{"conjunction", models.ChartFilter{Batter: "山田", Pitch: models.PitchCategoryStraight, HitTypes: []string{"バント"}}, []string{"K2"}},
		{"conjunction with counts", models.ChartFilter{Game: "game2", Balls: intp(3), Strikes: intp(1)}, []string{"K2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Query(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, memos(got))

			count, err := repo.Count(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), count)
		})
	}
}

func TestQueryIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	filter := models.ChartFilter{Batter: "山田", Pitch: models.PitchCategoryStraight}

	first, err := repo.Query(filter)
	require.NoError(t, err)
	second, err := repo.Query(filter)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same filter twice returned different rows (-first +second):\n%s", diff)
	}
}

func TestCountByHitType(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.CountByHitType(models.ChartFilter{})
	require.NoError(t, err)
	want := []models.SummaryBucket{
		{Value: "ゴロ", Count: 2},
		{Value: "フライ", Count: 2},
		{Value: "バント", Count: 1},
		{Value: "ライナー", Count: 1},
	}
	assert.Equal(t, want, got)

	got, err = repo.CountByHitType(models.ChartFilter{HitTypes: []string{}})
	require.NoError(t, err)
	assert.Empty(t, got, "empty selection summarizes to nothing")
}

func TestCountByPitchType(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.CountByPitchType(models.ChartFilter{Batter: "山田"})
	require.NoError(t, err)
	want := []models.SummaryBucket{
		{Value: "ストレート", Count: 2},
		{Value: "カーブ", Count: 1},
	}
	assert.Equal(t, want, got)
}

func TestDistinctLists(t *testing.T) {
	repo := newTestRepo(t)

	batters, err := repo.Batters()
	require.NoError(t, err)
	assert.Equal(t, []string{"佐藤", "山田", "鈴木"}, batters,
		"blank batter cells must not become filter options")

	games, err := repo.Games()
	require.NoError(t, err)
	assert.Equal(t, []string{"game1", "game2"}, games)

	hitTypes, err := repo.HitTypes()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ゴロ", "フライ", "ライナー", "バント"}, hitTypes)

	pitchTypes, err := repo.PitchTypes()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ストレート", "カーブ", "不明", "シュート"}, pitchTypes)

	ballValues, err := repo.BallValues()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, ballValues, "NULL counts must not become options")

	strikeValues, err := repo.StrikeValues()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, strikeValues)
}

func TestReplaceAllSwapsDataset(t *testing.T) {
	repo := newTestRepo(t)

	replacement := []models.PitchRecord{
		{Batter: "高橋", PitchType: "フォーク", HitType: "ゴロ", Memo: "L3", Game: "game3", X: -11.5, Y: 86.9, Color: "green", Symbol: "x", Label: "L3 / ゴロ / フォーク"},
	}
	require.NoError(t, repo.ReplaceAll(replacement))

	got, err := repo.Query(models.ChartFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"L3"}, memos(got))

	require.NoError(t, repo.ReplaceAll(nil))
	count, err := repo.Count(models.ChartFilter{})
	require.NoError(t, err)
	assert.Zero(t, count)
}
