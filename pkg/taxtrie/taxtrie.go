// Package taxtrie builds a shared-prefix hierarchy of taxonomy strings.
// The hierarchy does not depend on the phylogenetic tree and is used as
// a lineage reference when gaps between ranks have to be filled.
package taxtrie

import (
	"slices"

	"github.com/gnames/gnt2t/pkg/rank"
)

// Node is a node of the trie. The synthetic root has rank -1.
type Node struct {
	// Name is empty for absent names of the input.
	Name string
	Rank int

	Parent   *Node
	Children []*Node

	// Tips are ids of input rows that end at this node. They are
	// collected only when the trie is created with OptTips.
	Tips []string

	childLookup map[string]*Node
}

func newNode(name string, rnk int) *Node {
	return &Node{Name: name, Rank: rnk, childLookup: make(map[string]*Node)}
}

func (n *Node) child(name string, rnk int) *Node {
	if res, ok := n.childLookup[name]; ok {
		return res
	}
	res := newNode(name, rnk)
	res.Parent = n
	n.Children = append(n.Children, res)
	n.childLookup[name] = res
	return res
}

// FirstTip returns the first row id found under the node in pre-order.
func (n *Node) FirstTip() string {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(cur.Tips) > 0 {
			return cur.Tips[0]
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return ""
}

// Trie is an immutable taxonomy hierarchy with a name lookup.
type Trie struct {
	schema           *rank.Schema
	root             *Node
	byName           map[string]*Node
	keepPlaceholders bool
	tips             []string
}

// Option configures trie creation.
type Option func(*Trie)

// OptKeepPlaceholders adds names like 'g__' to the name lookup.
func OptKeepPlaceholders(b bool) Option {
	return func(t *Trie) {
		t.keepPlaceholders = b
	}
}

// OptTips attaches row ids to the deepest node of every lineage. The ids
// must be in the same order as lineages.
func OptTips(ids []string) Option {
	return func(t *Trie) {
		t.tips = ids
	}
}

// New builds a trie from rank-length lineages.
func New(s *rank.Schema, lineages [][]string, opts ...Option) *Trie {
	res := &Trie{
		schema: s,
		root:   newNode("", -1),
		byName: make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(res)
	}

	for i, lin := range lineages {
		cur := res.root
		for rnk, name := range lin {
			cur = cur.child(name, rnk)
		}
		if i < len(res.tips) {
			cur.Tips = append(cur.Tips, res.tips[i])
		}
	}

	for _, n := range res.nodes() {
		if n.Rank < 0 || n.Name == "" {
			continue
		}
		if !res.keepPlaceholders && rank.IsPlaceholder(n.Name) {
			continue
		}
		res.byName[n.Name] = n
	}
	return res
}

// nodes returns all nodes in pre-order.
func (t *Trie) nodes() []*Node {
	var res []*Node
	stack := []*Node{t.root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, cur)
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return res
}

// Root returns the synthetic root.
func (t *Trie) Root() *Node {
	return t.root
}

// Nodes returns every node except the root in pre-order.
func (t *Trie) Nodes() []*Node {
	return t.nodes()[1:]
}

// Lookup finds a node by name.
func (t *Trie) Lookup(name string) (*Node, bool) {
	res, ok := t.byName[name]
	return res, ok
}

// Walk returns the name and up to levels-1 of its ancestors, ordered from
// the root-most one to the name itself. Gaps of the trie are returned as
// rank placeholders. The walk stops at the root.
func (t *Trie) Walk(name string, levels int) ([]string, error) {
	node, ok := t.byName[name]
	if !ok {
		return nil, LookupError(name)
	}

	res := []string{name}
	cur := node.Parent
	for i := 1; i < levels; i++ {
		if cur == nil || cur.Rank < 0 {
			break
		}
		if cur.Name == "" || rank.IsPlaceholder(cur.Name) {
			res = append(res, t.schema.Placeholder(cur.Rank))
		} else {
			res = append(res, cur.Name)
		}
		cur = cur.Parent
	}

	slices.Reverse(res)
	return res, nil
}
