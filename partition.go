package id3

import (
	"context"
	"fmt"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/feature"
)

/*
Partition represents a partition of a dataset according to a feature:
one subset for every value of the feature observed on the dataset, in the
order the values were first found. It holds the information gain the
partition provides to predict the label feature, and its split information.
*/
type Partition struct {
	Feature          feature.Feature
	Values           []string
	Subsets          []dataset.Dataset
	informationGain  float64
	splitInformation float64
}

/*
NewPartition takes a context.Context, a dataset, a feature and a label
feature and returns the partition of the dataset for the given feature or
an error if the dataset could not be read.
*/
func NewPartition(ctx context.Context, s dataset.Dataset, f feature.Feature, label feature.Feature) (*Partition, error) {
	values, err := s.FeatureValues(ctx, f)
	if err != nil {
		return nil, err
	}
	counts, err := s.CountFeatureValues(ctx, f)
	if err != nil {
		return nil, err
	}
	var total int
	for _, c := range counts {
		total += c
	}
	result := &Partition{
		Feature:          f,
		Values:           values,
		Subsets:          make([]dataset.Dataset, 0, len(values)),
		splitInformation: dataset.Entropy(counts),
	}
	if total == 0 {
		return result, nil
	}
	informationGain, err := s.Entropy(ctx, label)
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		ss, err := s.SubsetWith(ctx, feature.NewDiscreteCriterion(f, value))
		if err != nil {
			return nil, err
		}
		result.Subsets = append(result.Subsets, ss)
		ssEntropy, err := ss.Entropy(ctx, label)
		if err != nil {
			return nil, err
		}
		informationGain -= ssEntropy * float64(counts[value]) / float64(total)
	}
	result.informationGain = informationGain
	return result, nil
}

// InformationGain returns the reduction in entropy of the label
// the partition achieves
func (p *Partition) InformationGain() float64 {
	return p.informationGain
}

// SplitInformation returns the entropy of the distribution of the
// partitioned dataset among the feature values
func (p *Partition) SplitInformation() float64 {
	return p.splitInformation
}

// GainRatio returns the information gain normalized by the split
// information, or 0 when the split information is 0
func (p *Partition) GainRatio() float64 {
	if p.splitInformation == 0.0 {
		return 0.0
	}
	return p.informationGain / p.splitInformation
}

func (p *Partition) String() string {
	return fmt.Sprintf("{Partition on %s %v gain %f split %f}", p.Feature.Name(), p.Values, p.informationGain, p.splitInformation)
}

/*
InformationGain takes a context.Context, a dataset, a feature and a label
feature and returns the information gain of partitioning the dataset on
the feature to predict the label.
*/
func InformationGain(ctx context.Context, s dataset.Dataset, f, label feature.Feature) (float64, error) {
	p, err := NewPartition(ctx, s, f, label)
	if err != nil {
		return 0.0, err
	}
	return p.InformationGain(), nil
}

/*
SplitInformation takes a context.Context, a dataset and a feature and
returns the entropy of the distribution of the dataset samples among the
values of the feature.
*/
func SplitInformation(ctx context.Context, s dataset.Dataset, f feature.Feature) (float64, error) {
	counts, err := s.CountFeatureValues(ctx, f)
	if err != nil {
		return 0.0, err
	}
	return dataset.Entropy(counts), nil
}

/*
GainRatio takes a context.Context, a dataset, a feature and a label feature
and returns the information gain of partitioning the dataset on the feature
divided by its split information. A feature taking a single value on the
dataset has a gain ratio of 0.
*/
func GainRatio(ctx context.Context, s dataset.Dataset, f, label feature.Feature) (float64, error) {
	p, err := NewPartition(ctx, s, f, label)
	if err != nil {
		return 0.0, err
	}
	return p.GainRatio(), nil
}
