// Package document provides a generic tree of named nodes with attributes and
// ordered children together with typed attribute accessors.
//
// Accessors never fail loudly: a missing or malformed attribute is reported
// through the second (ok) return value and callers decide whether that is
// fatal or whether a default applies.
package document

import (
	"math"
	"strconv"
	"strings"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the document tree.
type Node struct {
	Name     string
	Attrs    []Attr
	Children []*Node

	// Line number of the element start tag (0 if unknown).
	Line int
}

// Attr returns the raw value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// ChildNames returns the tag names of all direct children in document order.
func (n *Node) ChildNames() []string {
	names := make([]string, len(n.Children))
	for index, child := range n.Children {
		names[index] = child.Name
	}
	return names
}

// Index returns the position of the first direct child with the given tag or
// -1 if no such child exists.
func (n *Node) Index(name string) int {
	for index, child := range n.Children {
		if child.Name == name {
			return index
		}
	}
	return -1
}

// Child returns the first direct child with the given tag or nil.
func (n *Node) Child(name string) *Node {
	if index := n.Index(name); index != -1 {
		return n.Children[index]
	}
	return nil
}

// GetString returns the value of a string attribute.
func GetString(n *Node, attr string) (string, bool) {
	return n.Attr(attr)
}

// GetFloat parses a decimal attribute. NaN and infinite values are treated
// as parse failures.
func GetFloat(n *Node, attr string) (float32, bool) {
	raw, ok := n.Attr(attr)
	if !ok {
		return 0, false
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, false
	}
	return float32(val), true
}

// GetBoolean parses a boolean attribute. The tokens true/false and 1/0 are
// accepted regardless of case.
func GetBoolean(n *Node, attr string) (bool, bool) {
	raw, ok := n.Attr(attr)
	if !ok {
		return false, false
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}
