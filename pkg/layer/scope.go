package layer

import "strings"

// Scope is the construction context a layer is declared in.
type Scope interface {
	// Path returns the scope's position in its tree, e.g. "integ/v1-30".
	Path() string
}

// Node is a Scope built as a tree of named nodes.
type Node struct {
	parent *Node
	id     string
}

// NewRoot returns a root scope.
func NewRoot(id string) *Node {
	return &Node{id: id}
}

// Child returns a new scope nested under n.
func (n *Node) Child(id string) *Node {
	return &Node{parent: n, id: id}
}

// ID returns the node's own identifier.
func (n *Node) ID() string {
	return n.id
}

// Path joins the identifiers from the root down to n with "/".
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.id)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}
