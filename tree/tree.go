package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/pbanos/id3/feature"
)

// Tree represents a classification tree. It is composed of its root
// node and the label feature it is able to predict.
type Tree struct {
	Root  Node
	Label feature.Feature
}

// New takes the root Node and a label feature and returns a tree
// predicting the label with the given nodes.
func New(root Node, label feature.Feature) *Tree {
	return &Tree{root, label}
}

// Traverse takes a function and goes depth-first through the tree
// calling it for every node before its children. The function
// receives the depth of the node, the value of the branch leading to
// it (empty for the root) and the node itself.
// If the call to the function returns an error, the traversing is
// aborted and the error is returned.
func (t *Tree) Traverse(f func(depth int, value string, n Node) error) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("traversing nil tree")
	}
	return traverse(0, "", t.Root, f)
}

func traverse(depth int, value string, n Node, f func(int, string, Node) error) error {
	err := f(depth, value, n)
	if err != nil {
		return err
	}
	switch n := n.(type) {
	case *Leaf:
		return nil
	case *Internal:
		for _, v := range n.values {
			err = traverse(depth+1, v, n.branches[v], f)
			if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}

// Fprint writes the tree on w as an outline with a line for
// every node and branch, indenting two spaces per level.
func (t *Tree) Fprint(w io.Writer) error {
	return t.Traverse(func(depth int, value string, n Node) error {
		if depth > 0 {
			_, err := fmt.Fprintf(w, "%s|-- Value = %s\n", strings.Repeat("  ", depth-1), value)
			if err != nil {
				return err
			}
		}
		indent := strings.Repeat("  ", depth)
		var err error
		switch n := n.(type) {
		case *Leaf:
			_, err = fmt.Fprintf(w, "%sLeaf: %s\n", indent, n.Label())
		case *Internal:
			_, err = fmt.Fprintf(w, "%sAttribute: %s\n", indent, n.Feature().Name())
		default:
			err = fmt.Errorf("unknown node type %T", n)
		}
		return err
	})
}

// Size returns the number of nodes and the number of leaves in the tree,
// or an error if it cannot be traversed.
func (t *Tree) Size() (int, int, error) {
	var nodes, leaves int
	err := t.Traverse(func(_ int, _ string, n Node) error {
		nodes++
		if _, ok := n.(*Leaf); ok {
			leaves++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return nodes, leaves, nil
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return "ERROR: nil tree\n"
	}
	return t.subtreeString(nil, "", t.Root)
}

func (t *Tree) subtreeString(parent feature.Feature, value string, n Node) string {
	var result string
	if parent != nil {
		result = fmt.Sprintf("{ %s is %s }\n", parent.Name(), value)
	}
	var internal *Internal
	switch n := n.(type) {
	case *Leaf:
		var label string
		if t.Label != nil {
			label = t.Label.Name()
		}
		result = fmt.Sprintf("%s[ %s: %s ]\n", result, label, n.Label())
	case *Internal:
		internal = n
		result = fmt.Sprintf("%s[ %s? ]\n", result, n.Feature().Name())
	default:
		return fmt.Sprintf("%sERROR: unknown node type %T\n", result, n)
	}
	if internal == nil || len(internal.values) == 0 {
		return fmt.Sprintf("%s \n", result)
	}
	result = fmt.Sprintf("%s|\n", result)
	for i, v := range internal.values {
		for j, line := range strings.Split(t.subtreeString(internal.feature, v, internal.branches[v]), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(internal.values)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
