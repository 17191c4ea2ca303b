package phylo

import "slices"

// PreOrder returns the subtree nodes, each node before its descendants,
// children in input order.
func (n *Node) PreOrder() []*Node {
	var res []*Node
	stack := []*Node{n}
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

// PostOrder returns the subtree nodes, each node after its descendants.
func (n *Node) PostOrder() []*Node {
	var res []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res = append(res, cur)
		stack = append(stack, cur.Children...)
	}
	slices.Reverse(res)
	return res
}

// Tips returns the tips of the subtree from left to right.
func (n *Node) Tips() []*Node {
	var res []*Node
	for _, v := range n.PreOrder() {
		if v.IsTip() {
			res = append(res, v)
		}
	}
	return res
}

// NonTips returns internal nodes of the subtree in pre-order, the node
// itself included unless it is a tip.
func (n *Node) NonTips() []*Node {
	var res []*Node
	for _, v := range n.PreOrder() {
		if !v.IsTip() {
			res = append(res, v)
		}
	}
	return res
}

// Find returns the first node in pre-order with the given name.
func (n *Node) Find(name string) *Node {
	for _, v := range n.PreOrder() {
		if v.Name == name {
			return v
		}
	}
	return nil
}
