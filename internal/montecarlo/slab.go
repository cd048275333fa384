package montecarlo

import "github.com/aidenkroll/demonsim/internal/sim"

// slabPadding is sized so that each worker's State, followed by its
// padding, is comfortably larger than a single cache line (64 bytes)
// — mirroring original_source/sim.c's AllocateStates, which rounds
// each State up to a 4KB page boundary so that no two threads'
// States share a cache line. Go gives no portable way to request
// actual page alignment for a slice element, so this is an
// approximation: padding guarantees separation, not alignment.
const slabPadding = 256

type slabEntry struct {
	state sim.State
	_     [slabPadding]byte
}

// stateSlab holds one State per worker, each entry padded well clear
// of its neighbors to avoid false sharing across cores.
type stateSlab struct {
	entries []slabEntry
}

// newStateSlab allocates a slab of n worker States, all initialized
// from def.
func newStateSlab(n int, def *sim.State) *stateSlab {
	s := &stateSlab{entries: make([]slabEntry, n)}
	for i := range s.entries {
		s.entries[i].state = sim.CloneState(def)
	}
	return s
}

func (s *stateSlab) at(i int) *sim.State {
	return &s.entries[i].state
}
