// Package dependency models the package dependency tree reported by the package manager
// and computes which packages are impacted by a set of changed packages.
package dependency

// Node is one package in the dependency tree.
// The same package can appear under several parents; each appearance is its own Node.
type Node struct {
	Name         string  `json:"name"`
	Path         string  `json:"path"`
	Dependencies []*Node `json:"dependencies,omitempty"`
}

// Walk visits n and every node below it in depth-first pre-order.
// Returning false from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		// Push in reverse so children are visited in declaration order.
		for i := len(cur.Dependencies) - 1; i >= 0; i-- {
			if child := cur.Dependencies[i]; child != nil {
				stack = append(stack, child)
			}
		}
	}
}

// Size counts the nodes in the tree, repeated packages included.
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Find returns the first node named name in pre-order, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(cur *Node) bool {
		if found != nil {
			return false
		}
		if cur.Name == name {
			found = cur
			return false
		}
		return true
	})
	return found
}
