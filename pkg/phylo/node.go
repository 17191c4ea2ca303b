// Package phylo provides a rooted phylogenetic tree with ordered children
// and a weak back-reference to the parent. Nodes also carry decoration
// state that is filled by the decoration pipeline.
package phylo

// Node is a node of a rooted phylogenetic tree. A tip is a node without
// children.
type Node struct {
	// Name is the display label of the node. Empty string means the node
	// is unnamed.
	Name string

	// Length is the branch length to the parent, nil if absent.
	Length *float64

	// Children are owned by the node and keep the input order.
	Children []*Node

	parent *Node

	Decoration
}

// Decoration keeps per-node state of the decoration pipeline. Every
// rank-length slice has the length of the rank schema used for the run.
type Decoration struct {
	// ID is the pre-order discovery index of the node.
	ID int

	// TipStart and TipStop are indices of the left-most and right-most
	// tips covered by the node.
	TipStart int
	TipStop  int

	// Consensus is the cleaned classification of a tip. Empty strings mean
	// absent names. Internal nodes have an all-empty slice.
	Consensus []string

	// NumTips is the number of informative tips in the subtree.
	NumTips int

	// NumTipsRank is the number of informative tips per rank.
	NumTipsRank []int

	// TaxaCount keeps the number of tips per rank per name in the subtree.
	TaxaCount []map[string]int

	// Coverage is the ratio of subtree tips with a name to all tips with
	// that name in the tree, per rank per name.
	Coverage []map[string]float64

	// Precision is the ratio of subtree tips with a name to informative
	// subtree tips, per rank per name.
	Precision []map[string]float64

	// RankSafe is true at ranks with exactly one majority name.
	RankSafe []bool

	// RankNames are the names placed on the node per rank.
	RankNames []string

	// RankNameScores are scores of RankNames, NaN where no name is placed.
	RankNameScores []float64

	// Rank is the index of the deepest placed rank, -1 if unranked.
	Rank int

	// BackfillNames is the root-to-node ordered list of names the node
	// will display.
	BackfillNames []string

	// Bootstrap is the support value taken from a numeric input label.
	Bootstrap *float64
}

// New creates a node with the given name.
func New(name string) *Node {
	return &Node{Name: name, Decoration: Decoration{Rank: -1}}
}

// AddChild appends a child to the node and sets its parent.
func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsTip is true for nodes without children.
func (n *Node) IsTip() bool {
	return len(n.Children) == 0
}

// IsRoot is true for a node without parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Root returns the root of the tree the node belongs to.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Ancestors returns ancestors of the node, the nearest one first.
func (n *Node) Ancestors() []*Node {
	var res []*Node
	for p := n.parent; p != nil; p = p.parent {
		res = append(res, p)
	}
	return res
}
