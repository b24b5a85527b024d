package tree

import (
	"fmt"

	"github.com/pbanos/id3/feature"
)

/*
Node is a node of a tree: either a *Leaf or an *Internal node. No other
implementation exists, and consumers switch over both.
*/
type Node interface {
	node()
}

/*
Leaf is a node predicting a single label value for the samples
reaching it.
*/
type Leaf struct {
	label string
}

/*
Internal is a node splitting samples on the value they take for a
feature. It has one branch for each value of the feature observed on the
training samples that reached it, in the order they were first observed.
*/
type Internal struct {
	feature  feature.Feature
	values   []string
	branches map[string]Node
}

// NewLeaf returns a leaf predicting the given label
func NewLeaf(label string) *Leaf {
	return &Leaf{label}
}

// Label returns the value the leaf predicts
func (l *Leaf) Label() string {
	return l.label
}

func (l *Leaf) node() {}

func (l *Leaf) String() string {
	return l.label
}

/*
NewInternal takes a feature, the values it was observed to take and a child
node for each of them, and returns an internal node splitting on the feature.
It returns an error if there is not exactly one non-nil child per value or if
a value is repeated.
*/
func NewInternal(f feature.Feature, values []string, children []Node) (*Internal, error) {
	if f == nil {
		return nil, fmt.Errorf("internal node needs a feature")
	}
	if len(values) != len(children) {
		return nil, fmt.Errorf("internal node on %s has %d values and %d children", f.Name(), len(values), len(children))
	}
	n := &Internal{
		feature:  f,
		values:   append([]string(nil), values...),
		branches: make(map[string]Node, len(values)),
	}
	for i, v := range values {
		if children[i] == nil {
			return nil, fmt.Errorf("internal node on %s has no child for value %s", f.Name(), v)
		}
		if _, ok := n.branches[v]; ok {
			return nil, fmt.Errorf("internal node on %s has value %s twice", f.Name(), v)
		}
		n.branches[v] = children[i]
	}
	return n, nil
}

// Feature returns the feature the node splits on
func (n *Internal) Feature() feature.Feature {
	return n.feature
}

// Values returns the values of the feature the node has a branch for
func (n *Internal) Values() []string {
	return append([]string(nil), n.values...)
}

/*
Child takes a value for the node's feature and returns the node on its
branch and true, or nil and false if there is no branch for it.
*/
func (n *Internal) Child(value string) (Node, bool) {
	c, ok := n.branches[value]
	return c, ok
}

func (n *Internal) node() {}

func (n *Internal) String() string {
	return fmt.Sprintf("%s%v", n.feature.Name(), n.values)
}
