/*
Package id3 grows classification trees from datasets of categorical samples
with the ID3 induction algorithm.
*/
package id3

import (
	"context"
	"fmt"
	"math"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
	"github.com/pbanos/id3/tree"
)

// Logger is the interface Grow uses to trace the splits it chooses
type Logger interface {
	Logf(format string, args ...interface{})
}

// Strategy holds the configuration for growing a tree.
type Strategy struct {
	// Scorer ranks the partitions of a node's
	// dataset to decide the feature it splits
	// on. Ties go to the feature that comes
	// first in the features slice.
	Scorer
	// Workers is the maximum number of features
	// whose partitions are computed concurrently
	// for a node. 1 or less computes them one
	// after the other.
	Workers int
	// Logger receives a line for every split
	// chosen if not nil.
	Logger Logger
}

// DefaultStrategy returns a strategy that splits nodes by information
// gain sequentially and without logging.
func DefaultStrategy() *Strategy {
	return &Strategy{Scorer: ByInformationGain(), Workers: 1}
}

// Grow takes a context, a dataset, a slice of features, a label feature
// and a strategy and returns a tree predicting the label from the
// given features according to the training data on the dataset.
// The nil strategy means DefaultStrategy().
//
// The dataset and features are validated before growing anything: an
// empty dataset, nil or repeated features, a label among the features,
// or a sample lacking a value (or taking an invalid one) for any of them
// make Grow return an error wrapping a *dataset.MalformedError and no tree.
// Errors reading the dataset and cancellation of the context are returned
// as well.
func Grow(ctx context.Context, s dataset.Dataset, features []feature.Feature, label feature.Feature, st *Strategy) (*tree.Tree, error) {
	if st == nil {
		st = DefaultStrategy()
	}
	if st.Scorer == nil {
		return nil, fmt.Errorf("growing tree: strategy has no scorer")
	}
	err := validate(ctx, s, features, label)
	if err != nil {
		return nil, fmt.Errorf("growing tree: %w", err)
	}
	available := append([]feature.Feature(nil), features...)
	root, err := grow(ctx, s, available, label, st, 0)
	if err != nil {
		return nil, fmt.Errorf("growing tree: %w", err)
	}
	return tree.New(root, label), nil
}

func grow(ctx context.Context, s dataset.Dataset, features []feature.Feature, label feature.Feature, st *Strategy, depth int) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	counts, err := s.CountFeatureValues(ctx, label)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, dataset.Malformed(-1, "no samples to grow a node from")
	}
	if len(counts) == 1 || len(features) == 0 {
		return tree.NewLeaf(majority(counts)), nil
	}
	p, index, score, err := selectPartition(ctx, s, features, label, st)
	if err != nil {
		return nil, err
	}
	if st.Logger != nil {
		st.Logger.Logf("depth %d: splitting on %s (score %f) into %d branches", depth, p.Feature.Name(), score, len(p.Values))
	}
	remaining := make([]feature.Feature, 0, len(features)-1)
	remaining = append(remaining, features[:index]...)
	remaining = append(remaining, features[index+1:]...)
	children := make([]tree.Node, 0, len(p.Values))
	for _, ss := range p.Subsets {
		count, err := ss.Count(ctx)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			children = append(children, tree.NewLeaf(majority(counts)))
			continue
		}
		child, err := grow(ctx, ss, remaining, label, st, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	n, err := tree.NewInternal(p.Feature, p.Values, children)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// selectPartition returns the partition with the highest score among
// those of the given features, its feature index and its score. The
// first feature reaching the highest score wins.
func selectPartition(ctx context.Context, s dataset.Dataset, features []feature.Feature, label feature.Feature, st *Strategy) (*Partition, int, float64, error) {
	partitions := make([]*Partition, len(features))
	errs := make([]error, len(features))
	forEach(len(features), st.Workers, func(i int) {
		partitions[i], errs[i] = NewPartition(ctx, s, features[i], label)
	})
	for _, err := range errs {
		if err != nil {
			return nil, 0, 0.0, err
		}
	}
	selected := -1
	best := math.Inf(-1)
	for i, p := range partitions {
		score := st.Score(p)
		if selected < 0 || score > best {
			selected = i
			best = score
		}
	}
	return partitions[selected], selected, best, nil
}

// majority returns the value with the highest count, resolving ties
// to the lexicographically smallest value.
func majority(counts map[string]int) string {
	var result string
	most := -1
	for v, c := range counts {
		if c > most || (c == most && v < result) {
			result = v
			most = c
		}
	}
	return result
}

func validate(ctx context.Context, s dataset.Dataset, features []feature.Feature, label feature.Feature) error {
	if s == nil {
		return dataset.Malformed(-1, "no dataset")
	}
	if label == nil {
		return dataset.Malformed(-1, "no label feature")
	}
	seen := map[string]bool{label.Name(): true}
	for i, f := range features {
		if f == nil {
			return dataset.Malformed(-1, "feature #%d is nil", i)
		}
		if f.Name() == label.Name() {
			return dataset.Malformed(-1, "label %s is also a feature", label.Name())
		}
		if seen[f.Name()] {
			return dataset.Malformed(-1, "feature %s is repeated", f.Name())
		}
		seen[f.Name()] = true
	}
	samples, err := s.Samples(ctx)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return dataset.Malformed(-1, "dataset has no samples")
	}
	checked := make([]feature.Feature, 0, len(features)+1)
	checked = append(checked, features...)
	checked = append(checked, label)
	for i, sample := range samples {
		for _, f := range checked {
			v, err := sample.ValueFor(ctx, f)
			if err != nil {
				return dataset.Malformed(i, "%v", err)
			}
			ok, err := f.Valid(v)
			if !ok {
				return dataset.Malformed(i, "%v", err)
			}
		}
	}
	return nil
}
