package huffzip

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
)

// treeNode is one node of the Huffman tree.  A leaf carries a byte value and
// its frequency; an internal node carries the summed frequency of the two
// children it owns.  The whole tree becomes unreachable, and is collected as
// a unit, once code generation returns.
type treeNode struct {
	left   *treeNode
	right  *treeNode
	freq   uint64
	seq    uint32
	symbol byte
	leaf   bool
}

// buildTree constructs the Huffman tree for the given frequency table by
// repeatedly merging the two lowest-frequency nodes.  If only one distinct
// byte value exists, the lone leaf is the root.
//
// Node order is the total order (frequency, insertion sequence).  Leaves are
// inserted in ascending byte order and merged nodes are appended after them,
// so ties go to the lower byte value first and then to the earlier merge.
// Two runs over the same input always produce the same tree.
func buildTree(freqs FreqTable) (*treeNode, error) {
	if len(freqs) == 0 {
		return nil, ErrNoSymbols
	}

	h := nodeHeap{list: make([]*treeNode, 0, len(freqs))}
	var seq uint32
	for symbol := 0; symbol < 256; symbol++ {
		freq, ok := freqs[byte(symbol)]
		if !ok {
			continue
		}
		h.list = append(h.list, &treeNode{
			freq:   freq,
			seq:    seq,
			symbol: byte(symbol),
			leaf:   true,
		})
		seq++
	}
	h.Init()

	for h.Len() > 1 {
		left := heap.Pop(&h).(*treeNode)
		right := heap.Pop(&h).(*treeNode)

		// Saturating addition so pathological counts cannot wrap.
		freqSum := left.freq + right.freq
		if freqSum < left.freq {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, &treeNode{
			left:  left,
			right: right,
			freq:  freqSum,
			seq:   seq,
		})
		seq++
	}

	root := heap.Pop(&h).(*treeNode)
	return root, nil
}

// generateCodes walks the tree depth-first and records the root-to-leaf path
// of each leaf as its codeword: "0" for a left descent, "1" for a right one.
// Prefix-freedom follows from the tree shape, since only leaves carry
// symbols.  A single-leaf tree gets the one-bit codeword "0", because an
// empty codeword cannot be packed or matched.
func generateCodes(root *treeNode) (CodeTable, error) {
	assert.Assertf(root != nil, "generateCodes called with nil root")

	table := make(CodeTable, 64)
	if root.leaf {
		table[root.symbol] = MakeCode(1, 0)
		return table, nil
	}
	if err := walkTree(root, Code{}, table); err != nil {
		return nil, err
	}
	return table, nil
}

func walkTree(node *treeNode, prefix Code, table CodeTable) error {
	if node.leaf {
		table[node.symbol] = prefix
		return nil
	}

	assert.Assertf(node.left != nil && node.right != nil, "internal node missing a child")
	if prefix.Len >= MaxCodeLen {
		return ErrCodeTooLong
	}

	if err := walkTree(node.left, prefix.Append(0), table); err != nil {
		return err
	}
	return walkTree(node.right, prefix.Append(1), table)
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*treeNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*treeNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
