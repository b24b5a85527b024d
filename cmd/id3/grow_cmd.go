package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
	"github.com/pbanos/id3/tree"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// growConfig holds the flags of commands that grow a tree before
// using it, as trees are not persisted.
type growConfig struct {
	tableInput
	gainRatio          bool
	workers            int
	cpuIntensiveSet    bool
	memoryIntensiveSet bool
	table              *dataset.Table
}

type growCmdConfig struct {
	growConfig
	output  string
	format  string
	profile string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{growConfig: growConfig{tableInput: tableInput{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow a tree from a set of data to predict a certain feature.`,
		Run: func(cmd *cobra.Command, args []string) {
			code, err := config.run()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(code)
			}
		},
	}
	config.addFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "outline", "format to write the tree in: outline or tree")
	cmd.PersistentFlags().StringVar(&(config.profile), "profile", "", "write a cpu or mem profile of the growing to the current directory")
	return cmd
}

func (gc *growConfig) addFlags(flags *pflag.FlagSet) {
	gc.tableInput.addFlags(flags)
	flags.BoolVar(&(gc.gainRatio), "gain-ratio", false, "choose splits by gain ratio instead of information gain")
	flags.IntVarP(&(gc.workers), "workers", "w", 1, "number of features to score concurrently for every node")
	flags.BoolVar(&(gc.memoryIntensiveSet), "memory-intensive", false, "force the use of memory-intensive subsetting to decrease time at the cost of increasing memory use")
	flags.BoolVar(&(gc.cpuIntensiveSet), "cpu-intensive", false, "force the use of cpu-intensive subsetting to decrease memory use at the cost of increasing time")
}

func (gc *growConfig) Validate() error {
	if gc.cpuIntensiveSet && gc.memoryIntensiveSet {
		return fmt.Errorf("cannot set both memory-intensive and cpu-intensive flags at the same time")
	}
	if gc.workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", gc.workers)
	}
	return gc.tableInput.Validate()
}

func (gc *growConfig) dataset(t *dataset.Table) dataset.Dataset {
	if gc.memoryIntensiveSet {
		return dataset.NewMemoryIntensive(t.Samples())
	}
	if gc.cpuIntensiveSet {
		return dataset.NewCPUIntensive(t.Samples())
	}
	return t.Dataset()
}

func (gc *growConfig) strategy() *id3.Strategy {
	st := &id3.Strategy{Scorer: id3.ByInformationGain(), Workers: gc.workers, Logger: logger(gc.verbose)}
	if gc.gainRatio {
		st.Scorer = id3.ByGainRatio()
	}
	return st
}

/*
Grow reads the training table, keeps it, grows a tree from it and returns
it, or an error along with the exit status for the stage that failed.
*/
func (gc *growConfig) Grow() (*tree.Tree, int, error) {
	err := gc.Validate()
	if err != nil {
		return nil, 1, err
	}
	t, err := gc.ReadTable(gc.Context(), logger(gc.verbose))
	if err != nil {
		return nil, 2, fmt.Errorf("reading training set: %w", err)
	}
	gc.table = t
	label, features, err := gc.Features(t)
	if err != nil {
		return nil, 3, err
	}
	gc.Logf("Growing tree from a set with %d samples and %d features to predict %s ...", t.Len(), len(features), label.Name())
	tr, err := id3.Grow(gc.Context(), gc.dataset(t), features, label, gc.strategy())
	if err != nil {
		return nil, 4, err
	}
	nodes, leaves, err := tr.Size()
	if err != nil {
		return nil, 4, err
	}
	gc.Logf("Done: %d nodes, %d leaves", nodes, leaves)
	return tr, 0, nil
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.format != "outline" && gcc.format != "tree" {
		return fmt.Errorf("unknown format %s, valid formats are outline and tree", gcc.format)
	}
	if gcc.profile != "" && gcc.profile != "cpu" && gcc.profile != "mem" {
		return fmt.Errorf("unknown profile %s, valid profiles are cpu and mem", gcc.profile)
	}
	return nil
}

func (gcc *growCmdConfig) run() (int, error) {
	err := gcc.Validate()
	if err != nil {
		return 1, err
	}
	switch gcc.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}
	t, code, err := gcc.Grow()
	if err != nil {
		return code, err
	}
	err = outputTree(gcc.output, gcc.format, t)
	if err != nil {
		return 5, err
	}
	return 0, nil
}

func outputTree(outputPath, format string, t *tree.Tree) error {
	var f *os.File
	var err error
	if outputPath == "" {
		f = os.Stdout
	} else {
		f, err = os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
	}
	return writeTree(f, format, t)
}

func writeTree(w io.Writer, format string, t *tree.Tree) error {
	if format == "tree" {
		_, err := io.WriteString(w, t.String())
		return err
	}
	return t.Fprint(w)
}
