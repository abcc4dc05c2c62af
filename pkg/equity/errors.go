package equity

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every request validation error
var ErrInvalidInput = errors.New("invalid equity request")

var (
	ErrWrongHoleCardCount    = fmt.Errorf("%w: hero must hold exactly 2 cards", ErrInvalidInput)
	ErrWrongCommunityCount   = fmt.Errorf("%w: board must hold 0 to 5 cards", ErrInvalidInput)
	ErrNoOpponents           = fmt.Errorf("%w: at least one opponent is required", ErrInvalidInput)
	ErrEmptyOpponentRange    = fmt.Errorf("%w: opponent range is empty", ErrInvalidInput)
	ErrDuplicateCard         = fmt.Errorf("%w: duplicate card", ErrInvalidInput)
	ErrNonPositiveIterations = fmt.Errorf("%w: iterations must be positive", ErrInvalidInput)
	ErrNoAvailableCards      = fmt.Errorf("%w: not enough cards left in the deck", ErrInvalidInput)
	ErrUnknownMethod         = fmt.Errorf("%w: unknown method", ErrInvalidInput)
)
