package schedule

import "errors"

// ErrActNotFound indicates an operation named an act that is not on the board.
var ErrActNotFound = errors.New("act not found")
