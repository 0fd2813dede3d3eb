package calculator

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mmynk/tripwiser/internal/models"
)

// ErrInvalidGroupSize is returned when a group size is not a positive integer.
var ErrInvalidGroupSize = errors.New("group size must be a positive integer")

// Shuffle returns a uniformly random permutation of ids using Fisher-Yates.
// The input slice is left untouched. A nil rng uses the global generator.
func Shuffle(ids []models.MemberID, rng *rand.Rand) []models.MemberID {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	shuffled := slices.Clone(ids)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// MakeGroups partitions ids into randomly assigned play groups of groupSize.
// The final group holds the remainder and may be smaller.
func MakeGroups(ids []models.MemberID, groupSize int, rng *rand.Rand) ([][]models.MemberID, error) {
	if groupSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGroupSize, groupSize)
	}

	shuffled := Shuffle(ids, rng)
	groups := make([][]models.MemberID, 0, (len(shuffled)+groupSize-1)/groupSize)
	for start := 0; start < len(shuffled); start += groupSize {
		end := min(start+groupSize, len(shuffled))
		groups = append(groups, shuffled[start:end:end])
	}
	return groups, nil
}
