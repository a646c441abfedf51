package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridlearn/meta"
)

type Grid struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

type Hotspot struct {
	X           int     `yaml:"x" json:"x"`
	Y           int     `yaml:"y" json:"y"`
	StdDev      float64 `yaml:"stddev" json:"stddev"`
	Probability float64 `yaml:"probability" json:"probability"`
}

type Policy struct {
	StartingEpsilon float64 `yaml:"starting_epsilon" json:"startingEpsilon"`
	MinimumEpsilon  float64 `yaml:"minimum_epsilon" json:"minimumEpsilon"`
	DecayPerRound   float64 `yaml:"decay_per_round" json:"decayPerRound"`
	Radius          int     `yaml:"exploration_radius" json:"explorationRadius"`
}

type Config struct {
	Grid           Grid    `yaml:"grid" json:"grid"`
	Hotspot        Hotspot `yaml:"hotspot" json:"hotspot"`
	Policy         Policy  `yaml:"policy" json:"policy"`
	Rounds         int     `yaml:"rounds" json:"rounds"`
	LogEvery       int     `yaml:"log_every" json:"logEvery"`
	Seed           uint64  `yaml:"seed" json:"seed"` // 0 picks a time-based seed
	StatePath      string  `yaml:"state_path" json:"statePath"`
	EventLogPath   string  `yaml:"event_log_path" json:"eventLogPath"`
	ExperimentsDir string  `yaml:"experiments_dir" json:"experimentsDir"`
	Plot           bool    `yaml:"plot" json:"plot"`
	LogLevel       string  `yaml:"log_level" json:"logLevel"`
}

func Default() Config {
	return Config{
		Grid: Grid{Width: meta.GRID_WIDTH, Height: meta.GRID_HEIGHT},
		Hotspot: Hotspot{
			X:           meta.HOTSPOT_X,
			Y:           meta.HOTSPOT_Y,
			StdDev:      meta.HOTSPOT_STDDEV,
			Probability: meta.HOTSPOT_PROBABILITY,
		},
		Policy: Policy{
			StartingEpsilon: meta.STARTING_EPSILON,
			MinimumEpsilon:  meta.MINIMUM_EPSILON,
			DecayPerRound:   meta.EPSILON_DECAY,
			Radius:          meta.EXPLORATION_RADIUS,
		},
		Rounds:         meta.ROUNDS,
		LogEvery:       meta.LOG_EVERY,
		StatePath:      meta.MODEL_STATE_PATH,
		EventLogPath:   meta.EVENT_LOG_PATH,
		ExperimentsDir: meta.EXPERIMENTS_DIR,
		Plot:           true,
		LogLevel:       "info",
	}
}

// LoadFile overlays the YAML document at path onto c. Unknown keys are errors.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// RegisterFlags binds command line flags to c, using its current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Grid.Width, "width", c.Grid.Width, "Grid width in blocks")
	fs.IntVar(&c.Grid.Height, "height", c.Grid.Height, "Grid height in blocks")
	fs.IntVar(&c.Hotspot.X, "hotspot-x", c.Hotspot.X, "Hotspot centre x")
	fs.IntVar(&c.Hotspot.Y, "hotspot-y", c.Hotspot.Y, "Hotspot centre y")
	fs.Float64Var(&c.Hotspot.StdDev, "hotspot-stddev", c.Hotspot.StdDev, "Hotspot standard deviation in blocks")
	fs.Float64Var(&c.Hotspot.Probability, "hotspot-probability", c.Hotspot.Probability, "Probability a flag is placed near the hotspot")
	fs.Float64Var(&c.Policy.StartingEpsilon, "epsilon", c.Policy.StartingEpsilon, "Starting exploration rate")
	fs.Float64Var(&c.Policy.MinimumEpsilon, "min-epsilon", c.Policy.MinimumEpsilon, "Minimum exploration rate")
	fs.Float64Var(&c.Policy.DecayPerRound, "epsilon-decay", c.Policy.DecayPerRound, "Exploration rate decay per round")
	fs.IntVar(&c.Policy.Radius, "radius", c.Policy.Radius, "Exploration radius in blocks")
	fs.IntVar(&c.Rounds, "rounds", c.Rounds, "Number of rounds to play")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "Log progress every n rounds")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed, 0 for time-based")
	fs.StringVar(&c.StatePath, "state", c.StatePath, "Model state file")
	fs.StringVar(&c.EventLogPath, "events", c.EventLogPath, "Round event log file")
	fs.StringVar(&c.ExperimentsDir, "out", c.ExperimentsDir, "Directory for session metrics and plots")
	fs.BoolVar(&c.Plot, "plot", c.Plot, "Render learning plots after the session")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")
}

func (c Config) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Hotspot.StdDev < 0 {
		errs = append(errs, fmt.Errorf("hotspot stddev must not be negative, got %g", c.Hotspot.StdDev))
	}
	if c.Hotspot.Probability < 0 || c.Hotspot.Probability > 1 {
		errs = append(errs, fmt.Errorf("hotspot probability must be in [0, 1], got %g", c.Hotspot.Probability))
	}
	if c.Policy.MinimumEpsilon < 0 || c.Policy.StartingEpsilon > 1 || c.Policy.MinimumEpsilon > c.Policy.StartingEpsilon {
		errs = append(errs, fmt.Errorf("epsilon must satisfy 0 <= minimum <= starting <= 1, got %g and %g",
			c.Policy.MinimumEpsilon, c.Policy.StartingEpsilon))
	}
	if c.Policy.DecayPerRound < 0 {
		errs = append(errs, fmt.Errorf("epsilon decay must not be negative, got %g", c.Policy.DecayPerRound))
	}
	if c.Policy.Radius < 0 {
		errs = append(errs, fmt.Errorf("exploration radius must not be negative, got %d", c.Policy.Radius))
	}
	if c.Rounds < 0 {
		errs = append(errs, fmt.Errorf("rounds must not be negative, got %d", c.Rounds))
	}
	if c.LogEvery <= 0 {
		errs = append(errs, fmt.Errorf("log interval must be positive, got %d", c.LogEvery))
	}
	if c.StatePath == "" {
		errs = append(errs, errors.New("state path must be set"))
	}
	return errors.Join(errs...)
}
