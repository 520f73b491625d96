// meta/meta.go
package meta

import "time"

// DEFAULT_DEPTH is the search depth used when none is configured.
const DEFAULT_DEPTH = 5

// DEFAULT_WORKERS defines the number of workers in the shared pool.
const DEFAULT_WORKERS = 4

// HEARTBEAT defines the interval between two liveness messages.
const HEARTBEAT = 2 * time.Second

// BENCH_GAMES defines the number of games per match up in experiments.
const BENCH_GAMES = 4
