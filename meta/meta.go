// meta/meta.go
package meta

// ROWS defines the default board height.
const ROWS = 3

// COLS defines the default board width. It must be odd.
const COLS = 5

// HAND_SIZE defines the number of cards dealt at the start.
const HAND_SIZE = 5

// MAX_TURNS caps a match that never reaches two passes in a row.
const MAX_TURNS = 300

// GAMES defines the number of games per match-up in a tournament.
const GAMES = 1

// MINIMAX_CACHE defines the size of the Minimax margin cache.
const MINIMAX_CACHE = 4096

// RED_STRATEGY and BLUE_STRATEGY name the default AI strategies.
const RED_STRATEGY = "maxrow>control>fillfirst"
const BLUE_STRATEGY = "minimax"

// OUT_DIR is where tournament metrics are written.
const OUT_DIR = "results"

// ENV_PREFIX prefixes every environment override.
const ENV_PREFIX = "PAWNS_"
