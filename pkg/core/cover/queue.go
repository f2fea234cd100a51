package cover

import (
	"container/heap"

	"github.com/matthiaskaeding/setcover/pkg/core/index"
)

// queueEntry is a cached candidate ranking. The score field is a
// snapshot of the authoritative remaining score at insertion time; an
// entry whose snapshot no longer matches the tracker is stale and must
// not be acted upon.
type queueEntry struct {
	set      index.SetID
	score    int32
	priority float64
}

// entryHeap implements heap.Interface ordered by priority descending,
// breaking exact ties by lowest set id for reproducible selection.
type entryHeap []queueEntry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].set < h[j].set
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(queueEntry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// ScoreQueue is a max-priority structure with lazy invalidation.
// Coverage updates never touch the queue; instead, a popped entry is
// compared against the authoritative score table and reinserted with a
// corrected priority when stale. Remaining scores only decrease, so a
// cached priority is always an upper bound on the true one and the
// popped maximum can never hide a better fresh candidate.
type ScoreQueue struct {
	entries entryHeap
}

// NewScoreQueue creates an empty queue with room for n entries.
func NewScoreQueue(n int) *ScoreQueue {
	return &ScoreQueue{entries: make(entryHeap, 0, n)}
}

// InsertOrUpdate inserts a candidate with its score snapshot and
// ranking priority. Any older entry for the same set becomes stale and
// is discarded when it later surfaces.
func (q *ScoreQueue) InsertOrUpdate(set index.SetID, score int32, priority float64) {
	heap.Push(&q.entries, queueEntry{set: set, score: score, priority: priority})
}

// PopMax removes and returns the entry with the highest cached
// priority. The second return value is false when the queue is empty.
func (q *ScoreQueue) PopMax() (queueEntry, bool) {
	if len(q.entries) == 0 {
		return queueEntry{}, false
	}
	return heap.Pop(&q.entries).(queueEntry), true
}

// Len returns the number of cached entries, including stale ones.
func (q *ScoreQueue) Len() int { return len(q.entries) }
