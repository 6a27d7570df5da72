package schedcore

// eventHeap is a container/heap.Interface ordering Events by ascending
// TriggerTime. Ties are broken by heap insertion order only incidentally;
// callers must not rely on it (spec §5).
type eventHeap []Event

func (h eventHeap) Len() int            { return len(h) }
func (h eventHeap) Less(i, j int) bool  { return h[i].TriggerTime < h[j].TriggerTime }
func (h eventHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x interface{}) { *h = append(*h, x.(Event)) }

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
