package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// AgentConfig identifies a pacman agent configuration in an experiment.
type AgentConfig struct {
	ID         int
	Agent      string
	Depth      int
	Evaluation string
	Search     string
	Heuristic  string
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	Seed  uint64
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// MoveRow is the columnar form of a MoveRecord.
type MoveRow struct {
	Game        int32   `parquet:"game"`
	Step        int32   `parquet:"step"`
	Agent       int32   `parquet:"agent"`
	Action      string  `parquet:"action"`
	Score       float64 `parquet:"score"`
	Algorithm   string  `parquet:"algorithm,dict"`
	Depth       int32   `parquet:"depth"`
	DurationNs  int64   `parquet:"duration_ns"`
	Expanded    int32   `parquet:"expanded"`
	Evaluations int32   `parquet:"evaluations"`
	Prunes      int32   `parquet:"prunes"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory under root/name for the output files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "agent", "depth", "evaluation", "search", "heuristic"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Agent,
			strconv.Itoa(config.Depth),
			config.Evaluation,
			config.Search,
			config.Heuristic,
		})
	}

	err := w.writeCSV("agent_configs.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write agent configs: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent", "seed", "layout", "pacman", "ghosts", "win", "score", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.FormatUint(record.Seed, 10),
			record.Layout,
			record.Pacman,
			record.Ghosts,
			strconv.FormatBool(record.Win),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}

	err := w.writeCSV("game_records.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

// WriteMoveRecords writes the records both as CSV and as zstd compressed Parquet.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "agent", "action", "score", "algorithm", "depth", "duration", "expanded", "evaluations", "prunes"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Agent),
			record.Action,
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			record.Algorithm,
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.Prunes),
		})
	}

	err := w.writeCSV("move_records.csv", header, rows)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}

	err = WriteMoveParquet(filepath.Join(w.baseDir, "move_records.parquet"), records)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// WriteMoveParquet writes to a temporary file and renames it into place.
func WriteMoveParquet(outPath string, records []MoveRecord) error {
	rows := make([]MoveRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, MoveRow{
			Game:        int32(record.Game),
			Step:        int32(record.Step),
			Agent:       int32(record.Agent),
			Action:      record.Action,
			Score:       record.Score,
			Algorithm:   record.Algorithm,
			Depth:       int32(record.Depth),
			DurationNs:  record.Duration.Nanoseconds(),
			Expanded:    int32(record.Expanded),
			Evaluations: int32(record.Evaluations),
			Prunes:      int32(record.Prunes),
		})
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", "pacman_move_v1"),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadMoveParquet reads rows written by WriteMoveParquet.
func ReadMoveParquet(path string) ([]MoveRow, error) {
	rows, err := parquet.ReadFile[MoveRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
