package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type MatchUp struct {
	ID   int
	Red  string // Strategy names
	Blue string
}

type GameRecord struct {
	ID      int
	MatchUp int // MatchUp.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a folder named by the current timestamp under
// baseDir/name and writes every file there.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchUps(matchUps []MatchUp) error {
	header := []string{"id", "red", "blue"}
	rows := make([][]string, 0, len(matchUps))
	for _, m := range matchUps {
		rows = append(rows, []string{strconv.Itoa(m.ID), m.Red, m.Blue})
	}
	return w.write("match_ups.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "match_up", "match", "red", "blue", "winner", "red_score", "blue_score", "finished",
		"start_time", "end_time", "duration", "moves", "placements", "passes", "fallbacks",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.MatchUp),
			record.Match,
			record.Red,
			record.Blue,
			record.Winner.String(),
			strconv.Itoa(record.Score.Red),
			strconv.Itoa(record.Score.Blue),
			strconv.FormatBool(record.Finished),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Placements),
			strconv.Itoa(record.Passes),
			strconv.Itoa(record.Fallbacks),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "chosen", "played", "duration", "red_score", "blue_score"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Chosen.String(),
			record.Played.String(),
			record.Duration.String(),
			strconv.Itoa(record.Score.Red),
			strconv.Itoa(record.Score.Blue),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
