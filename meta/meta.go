// meta/meta.go
package meta

const APPLICATION_NAME = "Agentic Grid Learning"
const APPLICATION_VERSION = "0.1.0"

// GRID_WIDTH and GRID_HEIGHT define the grid size in blocks.
const GRID_WIDTH = 100
const GRID_HEIGHT = 100

// HOTSPOT_* define where the environment hides flags most of the time.
const HOTSPOT_X = 70
const HOTSPOT_Y = 25
const HOTSPOT_STDDEV = 8.0
const HOTSPOT_PROBABILITY = 0.8

// Exploration schedule: explore more early to learn, exploit more later.
const STARTING_EPSILON = 0.30
const MINIMUM_EPSILON = 0.05
const EPSILON_DECAY = 0.002

// EXPLORATION_RADIUS bounds the jitter applied to exploration guesses.
const EXPLORATION_RADIUS = 10

// ROUNDS defines the number of rounds per session.
const ROUNDS = 200

// LOG_EVERY defines how often a progress line is logged.
const LOG_EVERY = 10

const MODEL_STATE_PATH = "model_state.json"
const EVENT_LOG_PATH = "episodes.jsonl"
const EXPERIMENTS_DIR = "experiments"
