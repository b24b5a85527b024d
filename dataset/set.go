package dataset

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pbanos/id3/feature"
)

const (
	sampleCountThresholdForDatasetImplementation = 1000
)

/*
Dataset represents a read-only collection of samples.

Its Entropy method returns the entropy of the dataset for a given Feature: a
measure of the disinformation we have on the values samples that belong to
it take for the feature.

Its SubsetWith method takes a feature.Criterion and returns a subset that only
contains samples that satisfy it.

Its FeatureValues method returns the distinct values samples take for a
feature, in the order they are first found.

Its CountFeatureValues method returns the number of samples taking each
value of a feature.

Its Samples method returns the samples it contains, Count their number
and Criteria the criteria applied to obtain it from the original dataset.

Implementations never modify the samples they are built with, so a dataset
is safe for concurrent use by multiple goroutines.
*/
type Dataset interface {
	Entropy(context.Context, feature.Feature) (float64, error)
	SubsetWith(context.Context, feature.Criterion) (Dataset, error)
	FeatureValues(context.Context, feature.Feature) ([]string, error)
	CountFeatureValues(context.Context, feature.Feature) (map[string]int, error)
	Samples(context.Context) ([]Sample, error)
	Count(context.Context) (int, error)
	Criteria(context.Context) ([]feature.Criterion, error)
}

type memoryIntensiveSubsettingDataset struct {
	samples  []Sample
	criteria []feature.Criterion
}

type cpuIntensiveSubsettingDataset struct {
	samples  []Sample
	criteria []feature.Criterion
}

/*
New takes a slice of samples and returns a dataset built with them.
The dataset will be a CPU intensive one when the number of samples is
over sampleCountThresholdForDatasetImplementation
*/
func New(samples []Sample) Dataset {
	if len(samples) > sampleCountThresholdForDatasetImplementation {
		return NewCPUIntensive(samples)
	}
	return NewMemoryIntensive(samples)
}

/*
NewMemoryIntensive takes a slice of samples and returns a Dataset
built with them. A memory-intensive dataset is an implementation that
replicates the slice of samples when subsetting to reduce
calculations at the cost of increased memory.
*/
func NewMemoryIntensive(samples []Sample) Dataset {
	return &memoryIntensiveSubsettingDataset{samples, nil}
}

/*
NewCPUIntensive takes a slice of samples and returns a Dataset
built with them. A cpu-intensive dataset is an implementation that
instead of replicating the samples when subsetting, stores the
applying feature criteria to define the subset and keeps the same
sample slice. This can achieve a drastic reduction in memory use
that comes at the cost of CPU time: every calculation that goes over
the samples of the dataset will apply the feature criteria of the dataset
on all original samples (the ones provided to this method).
*/
func NewCPUIntensive(samples []Sample) Dataset {
	return &cpuIntensiveSubsettingDataset{samples, nil}
}

func (s *memoryIntensiveSubsettingDataset) Count(ctx context.Context) (int, error) {
	return len(s.samples), nil
}

func (s *cpuIntensiveSubsettingDataset) Count(ctx context.Context) (int, error) {
	var length int
	err := s.iterateOnDataset(ctx, func(_ Sample) (bool, error) {
		length++
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return length, nil
}

func (s *memoryIntensiveSubsettingDataset) Entropy(ctx context.Context, f feature.Feature) (float64, error) {
	return entropy(ctx, s.iterateOnDataset, f)
}

func (s *cpuIntensiveSubsettingDataset) Entropy(ctx context.Context, f feature.Feature) (float64, error) {
	return entropy(ctx, s.iterateOnDataset, f)
}

func (s *memoryIntensiveSubsettingDataset) FeatureValues(ctx context.Context, f feature.Feature) ([]string, error) {
	return featureValues(ctx, s.iterateOnDataset, f)
}

func (s *cpuIntensiveSubsettingDataset) FeatureValues(ctx context.Context, f feature.Feature) ([]string, error) {
	return featureValues(ctx, s.iterateOnDataset, f)
}

func (s *memoryIntensiveSubsettingDataset) CountFeatureValues(ctx context.Context, f feature.Feature) (map[string]int, error) {
	return countFeatureValues(ctx, s.iterateOnDataset, f)
}

func (s *cpuIntensiveSubsettingDataset) CountFeatureValues(ctx context.Context, f feature.Feature) (map[string]int, error) {
	return countFeatureValues(ctx, s.iterateOnDataset, f)
}

func (s *memoryIntensiveSubsettingDataset) SubsetWith(ctx context.Context, fc feature.Criterion) (Dataset, error) {
	var samples []Sample
	for _, sample := range s.samples {
		ok, err := fc.SatisfiedBy(ctx, sample)
		if err != nil {
			return nil, err
		}
		if ok {
			samples = append(samples, sample)
		}
	}
	return &memoryIntensiveSubsettingDataset{samples, withCriterion(s.criteria, fc)}, nil
}

func (s *cpuIntensiveSubsettingDataset) SubsetWith(ctx context.Context, fc feature.Criterion) (Dataset, error) {
	return &cpuIntensiveSubsettingDataset{s.samples, withCriterion(s.criteria, fc)}, nil
}

func (s *memoryIntensiveSubsettingDataset) Samples(ctx context.Context) ([]Sample, error) {
	return s.samples, nil
}

func (s *cpuIntensiveSubsettingDataset) Samples(ctx context.Context) ([]Sample, error) {
	var samples []Sample
	err := s.iterateOnDataset(ctx, func(sample Sample) (bool, error) {
		samples = append(samples, sample)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func (s *memoryIntensiveSubsettingDataset) Criteria(ctx context.Context) ([]feature.Criterion, error) {
	return s.criteria, nil
}

func (s *cpuIntensiveSubsettingDataset) Criteria(ctx context.Context) ([]feature.Criterion, error) {
	return s.criteria, nil
}

func (s *memoryIntensiveSubsettingDataset) String() string {
	return fmt.Sprintf("{Dataset %d samples %v}", len(s.samples), s.criteria)
}

func (s *memoryIntensiveSubsettingDataset) iterateOnDataset(ctx context.Context, lambda func(Sample) (bool, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, sample := range s.samples {
		ok, err := lambda(sample)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

func (s *cpuIntensiveSubsettingDataset) iterateOnDataset(ctx context.Context, lambda func(Sample) (bool, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, sample := range s.samples {
		skip := false
		for _, criterion := range s.criteria {
			ok, err := criterion.SatisfiedBy(ctx, sample)
			if err != nil {
				return err
			}
			if !ok {
				skip = true
				break
			}
		}
		if !skip {
			ok, err := lambda(sample)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
		}
	}
	return nil
}

type iterator func(context.Context, func(Sample) (bool, error)) error

func entropy(ctx context.Context, iterate iterator, f feature.Feature) (float64, error) {
	counts, err := countFeatureValues(ctx, iterate, f)
	if err != nil {
		return 0.0, err
	}
	return Entropy(counts), nil
}

func featureValues(ctx context.Context, iterate iterator, f feature.Feature) ([]string, error) {
	encountered := linkedhashset.New()
	err := iterate(ctx, func(sample Sample) (bool, error) {
		v, err := sample.ValueFor(ctx, f)
		if err != nil {
			return false, err
		}
		encountered.Add(v)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, encountered.Size())
	for _, v := range encountered.Values() {
		result = append(result, v.(string))
	}
	return result, nil
}

func countFeatureValues(ctx context.Context, iterate iterator, f feature.Feature) (map[string]int, error) {
	result := make(map[string]int)
	err := iterate(ctx, func(sample Sample) (bool, error) {
		v, err := sample.ValueFor(ctx, f)
		if err != nil {
			return false, err
		}
		result[v]++
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func withCriterion(criteria []feature.Criterion, fc feature.Criterion) []feature.Criterion {
	result := make([]feature.Criterion, 0, len(criteria)+1)
	result = append(result, fc)
	return append(result, criteria...)
}
