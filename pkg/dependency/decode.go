package dependency

import (
	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/testprune/errors"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// Decode parses the JSON printed by the package manager into a Node tree.
//
// Only malformed JSON is an error. A node with a missing or non-string name or path
// gets "", a dependencies field that is not an array is treated as empty, and array
// elements that are not objects are skipped. A root that is not an object yields an empty Node.
func Decode(data []byte) (*Node, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errUtils.Wrap(errUtils.ErrParseDependencyGraph, err, "invalid JSON")
	}
	return nodeFromValue(raw), nil
}

type pending struct {
	fields map[string]any
	node   *Node
}

// nodeFromValue converts decoded JSON into Nodes with an explicit stack so deep trees cannot exhaust the goroutine stack.
func nodeFromValue(v any) *Node {
	root := &Node{}
	fields, ok := v.(map[string]any)
	if !ok {
		return root
	}

	stack := []pending{{fields: fields, node: root}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cur.node.Name = stringField(cur.fields, "name")
		cur.node.Path = stringField(cur.fields, "path")

		children, _ := cur.fields["dependencies"].([]any)
		for _, c := range children {
			childFields, ok := c.(map[string]any)
			if !ok {
				continue
			}
			child := &Node{}
			cur.node.Dependencies = append(cur.node.Dependencies, child)
			stack = append(stack, pending{fields: childFields, node: child})
		}
	}
	return root
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
