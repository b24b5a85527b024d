package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/dataset/inputsample"
	"github.com/pbanos/id3/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	growConfig
	sampleValues []string
}

type stdoutFeatureValueRequester struct{}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{growConfig: growConfig{tableInput: tableInput{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a value for a sample answering questions",
		Long:  `Grow a tree and use it to predict the label value for a sample answering a reduced set of questions about its features, or for the sample given with sample flags`,
		Run: func(cmd *cobra.Command, args []string) {
			sample, err := config.Sample()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			tree, code, err := config.Grow()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(code)
			}
			if sample == nil {
				sample = inputsample.New(os.Stdin, config.askedFeatures(tree.Label), stdoutFeatureValueRequester{})
			}
			prediction, err := tree.Predict(config.Context(), sample)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			fmt.Printf("Predicted %s is %s\n", tree.Label.Name(), prediction)
		},
	}
	config.addFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringSliceVarP(&(config.sampleValues), "sample", "s", nil, "feature=value pairs for the sample to predict (when not given, values are asked for on STDIN)")
	return cmd
}

/*
Sample returns the sample given with sample flags, or nil if there are
none and values must be asked for.
*/
func (pcc *predictCmdConfig) Sample() (dataset.Sample, error) {
	if len(pcc.sampleValues) == 0 {
		if pcc.location == "" {
			return nil, fmt.Errorf("input flag is required to answer questions on STDIN")
		}
		return nil, nil
	}
	values := make(map[string]string, len(pcc.sampleValues))
	for _, kv := range pcc.sampleValues {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid sample value %q, expected feature=value", kv)
		}
		values[parts[0]] = parts[1]
	}
	return dataset.NewSample(values), nil
}

/*
askedFeatures returns the features whose values can be asked for: every
column of the training table but the label, each accepting only the values
observed on the training data.
*/
func (pcc *predictCmdConfig) askedFeatures(label feature.Feature) []feature.Feature {
	column, _ := pcc.table.Column(label.Name())
	var features []feature.Feature
	for i, name := range pcc.table.Header() {
		if i != column {
			features = append(features, feature.NewDiscreteFeature(name, observedValues(pcc.table.Rows(), i)))
		}
	}
	return features
}

func observedValues(rows [][]string, column int) []string {
	var values []string
	seen := make(map[string]bool)
	for _, row := range rows {
		if !seen[row[column]] {
			seen[row[column]] = true
			values = append(values, row[column])
		}
	}
	return values
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		if len(f.AvailableValues()) == 0 {
			fmt.Printf("Please provide the sample's %s:\n", f.Name())
		} else {
			fmt.Printf("Please provide the sample's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
		}
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string) error {
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		fmt.Printf("%v is not a valid value for the sample's %s. Please provide one of %v.\n", value, f.Name(), f.AvailableValues())
	default:
		return fmt.Errorf("unknown feature type %T", f)
	}
	return nil
}
