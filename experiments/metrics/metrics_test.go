package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting a decision", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 3)
		c.AddExpansion()
		c.AddExpansion()
		c.AddEvaluation()
		c.AddPrune()

		metric := c.Complete()

		require.Equal(t, "alphabeta", metric.Algorithm)
		require.Equal(t, 3, metric.Depth)
		require.Equal(t, 2, metric.Expanded)
		require.Equal(t, 1, metric.Evaluations)
		require.Equal(t, 1, metric.Prunes)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
	})

	t.Run("restarting resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 2)
		c.AddEvaluation()
		c.Complete()

		c.Start("minimax", 2)
		metric := c.Complete()

		require.Zero(t, metric.Evaluations)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 2)
		c.AddExpansion()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 1, Agent: "alphabeta", Depth: 2, Evaluation: "better"},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "agent", "depth", "evaluation", "search", "heuristic"},
			{"1", "alphabeta", "2", "better", "", ""},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    1,
			Agent: 1,
			Seed:  42,
			GameMetric: GameMetric{
				Layout:     "smallClassic",
				Pacman:     "alphabeta",
				Ghosts:     "random",
				Win:        true,
				Score:      1234,
				StartTime:  start,
				EndTime:    start.Add(2 * time.Second),
				Duration:   2 * time.Second,
				TotalMoves: 300,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "42", "smallClassic", "alphabeta", "random", "true", "1234",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:07Z", "2s", "300"}, rows[1])
	})

	t.Run("writing move records as csv and parquet", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 0, Agent: 0, Action: "West", Score: -1,
				SearchMetric: SearchMetric{Algorithm: "alphabeta", Depth: 2, Duration: time.Millisecond, Expanded: 10, Evaluations: 30, Prunes: 4}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Agent: 1, Action: "East", Score: -1}},
		}

		err := w.WriteMoveRecords(records)
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "0", "0", "West", "-1", "alphabeta", "2", "1ms", "10", "30", "4"}, rows[1])

		parquetRows, err := ReadMoveParquet(filepath.Join(w.Dir(), "move_records.parquet"))
		require.NoError(t, err)
		require.Equal(t, []MoveRow{
			{Game: 1, Step: 0, Agent: 0, Action: "West", Score: -1, Algorithm: "alphabeta", Depth: 2,
				DurationNs: int64(time.Millisecond), Expanded: 10, Evaluations: 30, Prunes: 4},
			{Game: 1, Step: 1, Agent: 1, Action: "East", Score: -1},
		}, parquetRows)
		require.NoFileExists(t, filepath.Join(w.Dir(), "move_records.parquet.tmp"))
	})
}
