package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuizID  = errors.New("quiz id must be a positive number")
	ErrRangeExhausted = errors.New("question id range exhausted")
)

// IDRange is a reserved block of question ids, inclusive on both ends.
type IDRange struct {
	Min int
	Max int
}

// ComputeNextID allocates the next question id for a quiz from its reserved
// block. Each quiz owns the range [(quizID-1)*blockSize+1, quizID*blockSize]
// unless overrides registers a different range for it. The candidate is one
// past the highest existing id inside the range, or the range start when no
// existing id falls inside.
//
// Pure and deterministic. Returns ErrInvalidQuizID for non-positive quiz
// ids and ErrRangeExhausted when the block is full.
//
// TODO: the fixed block caps each quiz at blockSize questions; product has
// not confirmed whether the range should grow instead of failing.
func ComputeNextID(quizID int, existing []int, blockSize int, overrides map[int]IDRange) (int, error) {
	if quizID <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQuizID, quizID)
	}
	if blockSize <= 0 {
		return 0, fmt.Errorf("block size must be positive, got %d", blockSize)
	}

	r, ok := overrides[quizID]
	if !ok {
		r = IDRange{
			Min: (quizID-1)*blockSize + 1,
			Max: quizID * blockSize,
		}
	}

	highest := r.Min - 1
	for _, id := range existing {
		if id >= r.Min && id <= r.Max && id > highest {
			highest = id
		}
	}
	candidate := highest + 1
	if candidate > r.Max {
		return 0, fmt.Errorf("%w: quiz %d holds ids %d..%d", ErrRangeExhausted, quizID, r.Min, r.Max)
	}
	return candidate, nil
}
