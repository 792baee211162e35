package huffman

import (
	"container/heap"
	"fmt"
)

// Node is a node in a Huffman tree.
// A leaf holds a symbol; an internal node has exactly two children and
// a frequency equal to the sum of theirs.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node

	seq int // Creation order, used to break frequency ties
}

// IsLeaf reports whether n holds a symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// nodeHeap is a min-heap ordered by frequency, then by creation order.
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].Freq != h[j].Freq {
		return h[i].Freq < h[j].Freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*Node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*h = old[:len(old)-1]
	return n
}

// BuildTree builds a Huffman tree from the frequency table and returns its root.
//
// Leaves are created in first-seen symbol order and merged nodes are
// numbered after them. When two nodes have equal frequency the one created
// earlier is taken first. The first node taken becomes the left child.
// A table with a single symbol produces a single leaf.
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, fmt.Errorf("build tree from empty frequency table: %w", ErrInvalidInput)
	}

	h := make(nodeHeap, 0, ft.Len())
	seq := 0
	for _, s := range ft.order {
		h = append(h, &Node{Symbol: s, Freq: ft.counts[s], seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
			seq:   seq,
		})
		seq++
	}

	return h[0], nil
}
