package model

import (
	"errors"
	"fmt"

	"gridlearn/grid"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrOutOfBounds       = errors.New("coordinates outside grid")
	ErrMalformedState    = errors.New("malformed model state")
)

// State is the persisted observation model and scoreboard. It is mutated once
// per round by the belief update and once by the score update, then saved.
type State struct {
	Width             int       `json:"gridWidth"`
	Height            int       `json:"gridHeight"`
	TotalObservations int64     `json:"totalObservations"`
	SumTrueX          int64     `json:"sumTrueX"`
	SumTrueY          int64     `json:"sumTrueY"`
	CellCounts        [][]int64 `json:"cellCounts"` // [y][x]
	TotalRounds       int64     `json:"totalRounds"`
	TotalDistanceSum  int64     `json:"totalDistanceSum"`
	BestDistance      *int      `json:"bestDistance"`
	WorstDistance     *int      `json:"worstDistance"`
}

// New returns an empty model with all-zero counts and no recorded rounds.
func New(width, height int) (*State, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	counts := make([][]int64, height)
	for y := range counts {
		counts[y] = make([]int64, width)
	}
	return &State{
		Width:      width,
		Height:     height,
		CellCounts: counts,
	}, nil
}

func (s *State) Contains(p grid.Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Height
}

// Validate checks the shape and internal consistency of a decoded state.
func (s *State) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %w: %dx%d", ErrMalformedState, ErrInvalidDimensions, s.Width, s.Height)
	}
	if len(s.CellCounts) != s.Height {
		return fmt.Errorf("%w: cellCounts has %d rows, want %d", ErrMalformedState, len(s.CellCounts), s.Height)
	}
	var sum int64
	for y, row := range s.CellCounts {
		if len(row) != s.Width {
			return fmt.Errorf("%w: cellCounts row %d has %d columns, want %d", ErrMalformedState, y, len(row), s.Width)
		}
		for x, count := range row {
			if count < 0 {
				return fmt.Errorf("%w: negative count %d at (%d, %d)", ErrMalformedState, count, x, y)
			}
			sum += count
		}
	}
	if sum != s.TotalObservations {
		return fmt.Errorf("%w: cell counts sum to %d but totalObservations is %d", ErrMalformedState, sum, s.TotalObservations)
	}
	if s.SumTrueX < 0 || s.SumTrueY < 0 || s.TotalRounds < 0 || s.TotalDistanceSum < 0 {
		return fmt.Errorf("%w: negative aggregate", ErrMalformedState)
	}
	if (s.BestDistance == nil) != (s.WorstDistance == nil) {
		return fmt.Errorf("%w: bestDistance and worstDistance must both be set or both be null", ErrMalformedState)
	}
	if s.BestDistance == nil && s.TotalRounds > 0 {
		return fmt.Errorf("%w: %d rounds recorded without best/worst distance", ErrMalformedState, s.TotalRounds)
	}
	if s.BestDistance != nil {
		if s.TotalRounds == 0 {
			return fmt.Errorf("%w: best/worst distance recorded without rounds", ErrMalformedState)
		}
		if *s.BestDistance < 0 || *s.BestDistance > *s.WorstDistance {
			return fmt.Errorf("%w: best distance %d, worst distance %d", ErrMalformedState, *s.BestDistance, *s.WorstDistance)
		}
	}
	return nil
}
