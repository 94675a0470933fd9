package dependency

import "github.com/samber/lo"

// frame is one node on the traversal stack of SubtreeImpact.
type frame struct {
	node *Node
	next int
	hit  bool
}

// ResolveImpact returns every package that is in changed or whose subtree contains a package in changed.
// Paths in the result are normalized against rootPrefix.
//
// It is the union of SubtreeImpact(root, name) over the unique names in changed. Names absent
// from the tree contribute nothing, and an empty changed list yields an empty set.
func ResolveImpact(root *Node, changed []string, rootPrefix string) ImpactSet {
	impact := ImpactSet{}
	if root == nil {
		return impact
	}

	for _, name := range lo.Uniq(changed) {
		for d := range SubtreeImpact(root, name, rootPrefix) {
			impact.Add(d)
		}
	}
	return impact
}

// SubtreeImpact returns the packages of node's subtree impacted by a change to the single package name.
// The tree is walked in post-order with an explicit stack, so depth is bounded by memory rather than the goroutine stack.
// The search stops at the first node named name on each branch: it is included, its own dependencies are not.
// Every ancestor of a match up to node is included. A subtree without name yields an empty set.
func SubtreeImpact(node *Node, name string, rootPrefix string) ImpactSet {
	impact := ImpactSet{}
	if node == nil {
		return impact
	}

	stack := []*frame{{node: node}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.node.Name != name && top.next < len(top.node.Dependencies) {
			child := top.node.Dependencies[top.next]
			top.next++
			if child != nil {
				stack = append(stack, &frame{node: child})
			}
			continue
		}

		stack = stack[:len(stack)-1]
		if top.node.Name == name {
			top.hit = true
		}
		if !top.hit {
			continue
		}

		impact.Add(Dependency{Name: top.node.Name, Path: NormalizePath(top.node.Path, rootPrefix)})
		if len(stack) > 0 {
			stack[len(stack)-1].hit = true
		}
	}

	return impact
}
