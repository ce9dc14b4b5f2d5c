package dance

import (
	"errors"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// Bailout is the sentinel a Callback returns to request that Solve
// unwind the recursion immediately, restoring matrix invariants on the
// way out (spec.md section 4.4/4.4's "Cancellation").
const Bailout = -99

// ErrResourceExhausted is returned by Solve when the constructed matrix
// crosses a conservative node-count threshold relative to available
// system memory. Per spec.md section 7, out-of-memory is fatal to the
// enclosing operation; Solve never silently downsizes the search.
var ErrResourceExhausted = errors.New("dance: matrix too large for available memory")

// Callback is invoked once per exact cover found. rows[i] holds the
// 0-based column indices of the i-th chosen row, in the order rows were
// selected during the search. Return Bailout to cancel the search
// immediately; positive return values are summed into Solve's total,
// and other values are not added.
type Callback func(rows [][]int) int

// maxNodesPerGiB is a conservative bound on how many arena nodes this
// solver will build per GiB of system memory before refusing to search,
// mirroring the resource-exhaustion awareness of spec.md section 7 and
// grounded on the cpuid/memory telemetry in eutils/utils.go's
// PrintStats.
const maxNodesPerGiB = 4_000_000

// Solve runs Algorithm X to completion (or until a Callback bails out),
// selecting at each step the column with the smallest size (ties broken
// by leftmost in the header row), per spec.md section 4.4. Matrix
// invariants are guaranteed restored to their pre-solve state when Solve
// returns, regardless of success, exhaustion, or bailout.
func Solve(m *Matrix, cb Callback) (int, error) {
	if err := checkResources(m); err != nil {
		return 0, err
	}
	stack := make([]int, 0, m.ncols)
	return search(m, stack, cb)
}

func checkResources(m *Matrix) error {
	gib := memory.TotalMemory() / (1024 * 1024 * 1024)
	if gib == 0 {
		gib = 1
	}
	// This solver is single-threaded (spec.md section 5), so it can't
	// claim the whole machine's memory for itself: assume the other
	// logical cores cpuid reports may be running unrelated work and
	// only budget this process's fair share.
	cores := uint64(cpuid.CPU.LogicalCores)
	if cores == 0 {
		cores = 1
	}
	budget := (gib * maxNodesPerGiB) / cores
	estimate := uint64(m.ncols) * uint64(m.nrows)
	if estimate > budget {
		return ErrResourceExhausted
	}
	return nil
}

// search is the recursive Algorithm X step. stack accumulates the
// representative data-node index of each row chosen so far.
func search(m *Matrix, stack []int, cb Callback) (int, error) {
	if m.nodes[root].right == root {
		rows := make([][]int, len(stack))
		for i, nodeIdx := range stack {
			rows[i] = m.columnsOfRow(nodeIdx)
		}
		rc := cb(rows)
		return rc, nil
	}

	col, minSize := -1, -1
	for h := m.nodes[root].right; h != root; h = m.nodes[h].right {
		if minSize == -1 || m.nodes[h].size < minSize {
			minSize = m.nodes[h].size
			col = h - 1
		}
	}
	if minSize == 0 {
		return 0, nil
	}

	m.Cover(col)
	total := 0
	h := col + 1
	for r := m.nodes[h].down; r != h; r = m.nodes[r].down {
		stack = append(stack, r)
		for j := m.nodes[r].right; j != r; j = m.nodes[j].right {
			m.Cover(m.nodes[j].col - 1)
		}

		rc, err := search(m, stack, cb)

		for j := m.nodes[r].left; j != r; j = m.nodes[j].left {
			m.Uncover(m.nodes[j].col - 1)
		}
		stack = stack[:len(stack)-1]

		if err != nil {
			m.Uncover(col)
			return total, err
		}
		if rc == Bailout {
			m.Uncover(col)
			return Bailout, nil
		}
		if rc > 0 {
			total += rc
		}
	}
	m.Uncover(col)
	return total, nil
}
