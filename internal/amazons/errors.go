package amazons

import "errors"

// Error kinds per spec.md §7. InvalidPosition and InvalidAction are
// ordinary, recoverable conditions surfaced to a caller (a loader, or a
// human move-submission path). EmptyHistory is a programming error that
// should never occur given a correctly driven engine, and is reported the
// same way so callers can log-and-abort instead of silently continuing on
// a corrupt board. NoActionFound is what the search driver returns when
// it is asked to move for a player who has no legal action, i.e. the game
// is already over.
var (
	ErrInvalidPosition = errors.New("amazons: invalid position")
	ErrInvalidAction   = errors.New("amazons: invalid action")
	ErrEmptyHistory    = errors.New("amazons: undo with empty history")
	ErrNoActionFound   = errors.New("amazons: no action found: side to move has no legal action")
)
