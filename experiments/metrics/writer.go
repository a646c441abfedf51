package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"gridlearn/config"
)

type Setup struct {
	Session   uuid.UUID     `json:"session"`
	Config    config.Config `json:"config"`
	Summary   SessionMetric `json:"summary"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp>_<session> for this session's output.
func NewWriter(root, name string, session uuid.UUID) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp+"_"+session.String())
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

func (w *Writer) WriteSetup(session uuid.UUID, cfg config.Config, summary SessionMetric) error {
	setup := Setup{
		Session:   session,
		Config:    cfg,
		Summary:   summary,
		StartTime: summary.StartTime,
		EndTime:   summary.EndTime,
		Duration:  summary.Duration,
	}

	path := filepath.Join(w.baseDir, "setup.json")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}

	return nil
}

func (w *Writer) WriteRoundRecords(records []RoundMetric) error {
	path := filepath.Join(w.baseDir, "rounds.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{
		"round", "epsilon", "explored",
		"guess_x", "guess_y", "belief_x", "belief_y", "true_x", "true_y",
		"distance", "session_avg", "lifetime_avg", "duration",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Round),
			strconv.FormatFloat(record.Epsilon, 'f', 4, 64),
			strconv.FormatBool(record.Explored),
			strconv.Itoa(record.Guess.X),
			strconv.Itoa(record.Guess.Y),
			strconv.Itoa(record.Belief.X),
			strconv.Itoa(record.Belief.Y),
			strconv.Itoa(record.Truth.X),
			strconv.Itoa(record.Truth.Y),
			strconv.Itoa(record.Distance),
			strconv.FormatFloat(record.SessionAverage, 'f', 2, 64),
			strconv.FormatFloat(record.LifetimeAverage, 'f', 2, 64),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush round records: %w", err)
	}
	return nil
}
