package vegas

import (
	"github.com/goserg/vegasgolf/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
)

// NextHole returns the first unplayed hole after current, wrapping 18 -> 1.
// ok is false once total holes are played or when no hole is left in the cycle.
func NextHole(current int, played mapset.Set[int], total int) (hole int, ok bool) {
	if played.Cardinality() >= total {
		return 0, false
	}
	for i := 0; i < domain.HolesInCycle; i++ {
		next := wrap(current + 1 + i)
		if !played.Contains(next) {
			return next, true
		}
	}
	return 0, false
}

func wrap(hole int) int {
	return ((hole-1)%domain.HolesInCycle+domain.HolesInCycle)%domain.HolesInCycle + 1
}

// PlayedSet collects played holes for NextHole.
func PlayedSet(holes []int) mapset.Set[int] {
	return mapset.NewThreadUnsafeSet[int](holes...)
}
