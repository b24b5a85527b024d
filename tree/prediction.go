package tree

import (
	"context"
	"errors"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrUnseenAttributeValue is the error wrapped by the one returned by the
Predict method of a tree when a sample takes a value for a feature the tree
splits on that no training sample reaching that node had, so there is no
branch to follow.
*/
const ErrUnseenAttributeValue = PredictionError("attribute value not seen in training data")

func (pe PredictionError) Error() string {
	return string(pe)
}

// Predict takes a sample and returns the label value the tree predicts
// for it, or an error if the prediction could not be made.
// Errors caused by the sample taking a value with no branch wrap
// ErrUnseenAttributeValue.
func (t *Tree) Predict(ctx context.Context, s feature.Sample) (string, error) {
	if t == nil || t.Root == nil {
		return "", fmt.Errorf("nil tree cannot predict samples")
	}
	n := t.Root
	for {
		switch node := n.(type) {
		case *Leaf:
			return node.Label(), nil
		case *Internal:
			v, err := s.ValueFor(ctx, node.Feature())
			if err != nil {
				return "", fmt.Errorf("predicting sample: %v", err)
			}
			child, ok := node.Child(v)
			if !ok {
				return "", fmt.Errorf("predicting sample: %w: %s is %q", ErrUnseenAttributeValue, node.Feature().Name(), v)
			}
			n = child
		default:
			return "", fmt.Errorf("predicting sample: unknown node type %T", n)
		}
	}
}

/*
Test takes a context.Context and a Dataset and returns three values:
 * the prediction success rate of the tree over the given Dataset for the label
 * the number of failing predictions for the dataset because of ErrUnseenAttributeValue errors
 * an error if a prediction could not be made for reasons other than the tree not
   having a branch for the sample. If this is not nil, the other values will be 0.0
   and 0 respectively
*/
func (t *Tree) Test(ctx context.Context, s dataset.Dataset) (float64, int, error) {
	if t == nil {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	samples, err := s.Samples(ctx)
	if err != nil {
		return 0.0, 0, err
	}
	if len(samples) == 0 {
		return 0.0, 0, nil
	}
	for _, sample := range samples {
		p, err := t.Predict(ctx, sample)
		if err != nil {
			if !errors.Is(err, ErrUnseenAttributeValue) {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		v, err := sample.ValueFor(ctx, t.Label)
		if err != nil {
			return 0.0, 0, err
		}
		if p == v {
			result += 1.0
		}
	}
	result = result / float64(len(samples))
	return result, errCount, nil
}
