package game

import "github.com/gammazero/deque"

type location struct {
	row, col int
}

// visitor processes a single queued location and reports whether the flood
// should expand through it to its neighbors.
type visitor func(row, col int) bool

// flood runs a worklist traversal over 8-connected locations starting at
// (row, col). Each dequeued location is handed to the visitor exactly once;
// the visitor re-validates its own preconditions, so expansion order does not
// affect the final state and the call stack stays flat no matter how large
// the traversed region grows.
func flood(row, col int, visit visitor) {
	seen := make(map[location]struct{})
	var queue deque.Deque[location]

	enqueue := func(loc location) {
		if _, alreadySeen := seen[loc]; alreadySeen {
			return
		}
		seen[loc] = struct{}{}
		queue.PushBack(loc)
	}

	enqueue(location{row, col})
	for queue.Len() > 0 {
		loc := queue.PopFront()
		if !visit(loc.row, loc.col) {
			continue
		}

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				enqueue(location{loc.row + dr, loc.col + dc})
			}
		}
	}
}
