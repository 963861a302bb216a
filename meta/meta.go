// meta/meta.go
package meta

import "time"

// DEFAULT_DEPTH is the search depth limit when none is configured.
const DEFAULT_DEPTH = 10

// DEFAULT_TIME_LIMIT bounds the wall-clock time of one search call.
const DEFAULT_TIME_LIMIT = 3 * time.Second

// Evaluation weights per cell class.
const (
	INTERIOR_WEIGHT = 1
	EDGE_WEIGHT     = 3
	CORNER_WEIGHT   = 10
)

// MAX_ILLEGAL_ATTEMPTS is how often the engine re-asks a player who keeps
// proposing illegal moves before giving up on the game.
const MAX_ILLEGAL_ATTEMPTS = 10

// EXPERIMENT_GAMES is the number of games per matchup.
const EXPERIMENT_GAMES = 10
