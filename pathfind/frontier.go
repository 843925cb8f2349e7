package pathfind

import (
	"container/heap"

	"github.com/abel-mekonn/pathviz-api/maze"
)

// frontierItem is one discovered-but-not-settled candidate. seq is a global
// insertion counter used to break priority ties in insertion order.
type frontierItem struct {
	pos      maze.CellPosition
	priority int
	seq      int
}

// frontier is the strategy-specific part of a search run: the removal order
// of push/pop is the only thing that distinguishes the four strategies.
type frontier interface {
	push(item *frontierItem)
	pop() (*frontierItem, bool)
	len() int
}

func newFrontier(strategy Strategy) (frontier, error) {
	switch strategy {
	case BFS:
		return &fifoFrontier{}, nil
	case DFS:
		return &lifoFrontier{}, nil
	case Dijkstra, AStar:
		f := &costFrontier{}
		heap.Init(&f.items)
		return f, nil
	default:
		return nil, ErrInvalidStrategy
	}
}

// fifoFrontier removes items in insertion order.
type fifoFrontier struct {
	items []*frontierItem
}

func (f *fifoFrontier) push(item *frontierItem) {
	f.items = append(f.items, item)
}

func (f *fifoFrontier) pop() (*frontierItem, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	item := f.items[0]
	f.items = f.items[1:]
	return item, true
}

func (f *fifoFrontier) len() int {
	return len(f.items)
}

// lifoFrontier removes items in reverse insertion order.
type lifoFrontier struct {
	items []*frontierItem
}

func (f *lifoFrontier) push(item *frontierItem) {
	f.items = append(f.items, item)
}

func (f *lifoFrontier) pop() (*frontierItem, bool) {
	if len(f.items) == 0 {
		return nil, false
	}
	item := f.items[len(f.items)-1]
	f.items = f.items[:len(f.items)-1]
	return item, true
}

func (f *lifoFrontier) len() int {
	return len(f.items)
}

// costFrontier removes the item with the lowest priority, breaking ties by
// insertion order. Relaxation re-inserts a cell rather than adjusting it in
// place; the stale entry is skipped as already settled when it surfaces.
type costFrontier struct {
	items costHeap
}

func (f *costFrontier) push(item *frontierItem) {
	heap.Push(&f.items, item)
}

func (f *costFrontier) pop() (*frontierItem, bool) {
	if f.items.Len() == 0 {
		return nil, false
	}
	return heap.Pop(&f.items).(*frontierItem), true
}

func (f *costFrontier) len() int {
	return f.items.Len()
}

type costHeap []*frontierItem

func (h costHeap) Len() int { return len(h) }

func (h costHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h costHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *costHeap) Push(x any) {
	*h = append(*h, x.(*frontierItem))
}

func (h *costHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
