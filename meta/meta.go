// meta/meta.go
package meta

// DEPTH_EASY defines the look-ahead depth (plies) for the easy difficulty.
const DEPTH_EASY = 2

// DEPTH_NORMAL defines the look-ahead depth for the normal difficulty.
const DEPTH_NORMAL = 4

// DEPTH_HARD defines the look-ahead depth for the hard difficulty.
const DEPTH_HARD = 6

// MAX_MOVES caps a game that never reaches a capture-out win.
const MAX_MOVES = 500

// GO_ROUTINES defines the number of experiment games run concurrently.
const GO_ROUTINES = 8
