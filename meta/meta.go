// meta/meta.go
package meta

// Rows defines the canonical Connect-Four board height.
const Rows = 6

// Columns defines the canonical Connect-Four board width.
const Columns = 7

// WinLength defines how many pieces in a line win the game.
const WinLength = 4

// Goroutines defines the default number of search workers.
const Goroutines = 8

// Rollouts defines the number of random playouts per candidate move.
const Rollouts = 1000

// MaxTurns bounds a game loop run.
const MaxTurns = 300
