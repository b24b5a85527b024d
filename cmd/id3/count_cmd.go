package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pbanos/id3/dataset"
	"github.com/spf13/cobra"
)

type countCmdConfig struct {
	tableInput
}

func countCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &countCmdConfig{tableInput{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the values of every column of a set of data",
		Long:  `Count the occurrences of every value on each column of a set of data and the entropy of their distribution`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			t, err := config.ReadTable(config.Context(), logger(config.verbose))
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			err = writeCounts(os.Stdout, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
		},
	}
	config.addFlags(cmd.PersistentFlags())
	return cmd
}

// writeCounts writes, for every column of t, its entropy and the
// number of rows taking each of its values in lexicographic order.
func writeCounts(w io.Writer, t *dataset.Table) error {
	header := t.Header()
	counts := dataset.CountOccurrences(t.Rows())
	for i, name := range header {
		var c map[string]int
		if i < len(counts) {
			c = counts[i]
		}
		_, err := fmt.Fprintf(w, "%s: entropy %f\n", name, dataset.Entropy(c))
		if err != nil {
			return err
		}
		values := make([]string, 0, len(c))
		for v := range c {
			values = append(values, v)
		}
		sort.Strings(values)
		for _, v := range values {
			_, err = fmt.Fprintf(w, "  %s: %d\n", v, c[v])
			if err != nil {
				return err
			}
		}
	}
	return nil
}
