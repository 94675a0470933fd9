// Package testplan reads, filters and writes Xcode test plans (.xctestplan).
package testplan

import (
	jsoniter "github.com/json-iterator/go"

	errUtils "github.com/cloudposse/testprune/errors"
	"github.com/cloudposse/testprune/pkg/dependency"
)

const (
	testTargetsKey   = "testTargets"
	targetKey        = "target"
	containerPathKey = "containerPath"
)

// SortMapKeys matches the layout Xcode writes test plans in.
var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// Document is a parsed test plan. Everything except the test target list is kept as decoded.
type Document struct {
	fields  map[string]any
	Targets []TestTarget
}

// TestTarget is one entry of `testTargets`, kept verbatim.
type TestTarget struct {
	raw any
}

// NewTestTarget wraps a decoded `testTargets` entry.
func NewTestTarget(raw any) TestTarget {
	return TestTarget{raw: raw}
}

// ContainerPath returns `target.containerPath`, or "" when the entry does not have one.
func (t TestTarget) ContainerPath() string {
	entry, ok := t.raw.(map[string]any)
	if !ok {
		return ""
	}
	target, ok := entry[targetKey].(map[string]any)
	if !ok {
		return ""
	}
	path, _ := target[containerPathKey].(string)
	return path
}

// Parse decodes a test plan. The top level must be a JSON object; a missing or
// non-array `testTargets` is read as an empty list.
func Parse(data []byte) (*Document, error) {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errUtils.Wrap(errUtils.ErrParseTestPlan, err, "invalid JSON")
	}
	if fields == nil {
		return nil, errUtils.Build(errUtils.ErrParseTestPlan).
			WithHint("a test plan must be a JSON object").
			Err()
	}

	doc := &Document{fields: fields}
	entries, _ := fields[testTargetsKey].([]any)
	for _, e := range entries {
		doc.Targets = append(doc.Targets, NewTestTarget(e))
	}
	delete(doc.fields, testTargetsKey)

	return doc, nil
}

// Marshal encodes the document with two-space indentation and sorted keys.
// `testTargets` is always written, as an empty array when no target is left.
func (d *Document) Marshal() ([]byte, error) {
	out := make(map[string]any, len(d.fields)+1)
	for k, v := range d.fields {
		out[k] = v
	}

	targets := make([]any, 0, len(d.Targets))
	for _, t := range d.Targets {
		targets = append(targets, t.raw)
	}
	out[testTargetsKey] = targets

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ContainerPaths lists the container reference of every target, in order.
func (d *Document) ContainerPaths() []string {
	paths := make([]string, 0, len(d.Targets))
	for _, t := range d.Targets {
		paths = append(paths, t.ContainerPath())
	}
	return paths
}

// FilterResult summarizes a Filter call.
type FilterResult struct {
	Kept    int      `json:"kept" yaml:"kept"`
	Removed []string `json:"removed" yaml:"removed"`
}

// Filter returns a copy of doc keeping only the targets owned by an impacted package.
// A target is kept when its container path equals containerPrefix followed by the path of
// some Dependency in impact. Targets without a container path never match. Order is preserved
// and doc itself is not modified.
func Filter(doc *Document, impact dependency.ImpactSet, containerPrefix string) (*Document, FilterResult) {
	wanted := make(map[string]struct{}, impact.Len())
	for p := range impact.Paths() {
		wanted[containerPrefix+p] = struct{}{}
	}

	out := &Document{fields: doc.fields}
	result := FilterResult{Removed: []string{}}
	for _, t := range doc.Targets {
		path := t.ContainerPath()
		if _, ok := wanted[path]; ok && path != "" {
			out.Targets = append(out.Targets, t)
			continue
		}
		result.Removed = append(result.Removed, path)
	}
	result.Kept = len(out.Targets)

	return out, result
}
