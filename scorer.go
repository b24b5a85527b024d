package id3

/*
Scorer is an interface wrapping the Score method, used to rank the
partitions of a node's dataset on each candidate feature. The partition
with the highest score decides the feature the node splits on.
*/
type Scorer interface {
	Score(p *Partition) float64
}

/*
ScorerFunc wraps a function with the Score method signature to implement
the Scorer interface
*/
type ScorerFunc func(p *Partition) float64

// Score invokes the ScorerFunc with the given partition and returns its result.
func (sf ScorerFunc) Score(p *Partition) float64 {
	return sf(p)
}

/*
ByInformationGain returns a Scorer whose Score method returns the
information gain of the partition. This is the classic ID3 criterion.
*/
func ByInformationGain() Scorer {
	return ScorerFunc(func(p *Partition) float64 {
		return p.InformationGain()
	})
}

/*
ByGainRatio returns a Scorer whose Score method returns the gain ratio of
the partition, which penalizes features with many distinct values.
*/
func ByGainRatio() Scorer {
	return ScorerFunc(func(p *Partition) float64 {
		return p.GainRatio()
	})
}
