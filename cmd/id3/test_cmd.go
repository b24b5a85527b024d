package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	growConfig
	testInput source
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{growConfig: growConfig{tableInput: tableInput{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a training data set and test its performance against a test data set`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			tree, code, err := config.Grow()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(code)
			}
			testTable, err := config.testInput.ReadTable(config.Context(), logger(config.verbose))
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading testing set: %v\n", err)
				os.Exit(5)
			}
			err = testTable.Check(tree.Label)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing set: %v\n", err)
				os.Exit(6)
			}
			config.Logf("Testing tree against testset with %d samples...", testTable.Len())
			successRate, errorCount, err := tree.Test(config.Context(), testTable.Dataset())
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing tree: %v\n", err)
				os.Exit(7)
			}
			config.Logf("Done")
			fmt.Printf("%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	config.addFlags(cmd.PersistentFlags())
	config.testInput.addFlags(cmd.PersistentFlags(), "test", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the data to test the tree against (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.testInput.location == "" {
		return fmt.Errorf("required test flag was not set")
	}
	tcc.testInput.delimiter = tcc.delimiter
	tcc.testInput.maxDBConns = tcc.maxDBConns
	return tcc.testInput.Validate()
}
