package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type datasetCmdConfig struct {
	tableInput
	output source
}

func datasetCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &datasetCmdConfig{tableInput: tableInput{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Copy a set of data",
		Long:  `Copy a set of data between CSV files, SQLite3 and PostgreSQL databases and MongoDB collections`,
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
			err = config.output.WriteTable(config.Context(), logger(config.verbose), t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Done: %d samples copied", t.Len())
		},
	}
	config.addFlags(cmd.PersistentFlags())
	config.output.addFlags(cmd.PersistentFlags(), "output", "o", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to copy the data to (defaults to STDOUT in CSV)")
	return cmd
}

func (dcc *datasetCmdConfig) Validate() error {
	dcc.output.delimiter = dcc.delimiter
	dcc.output.maxDBConns = dcc.maxDBConns
	return dcc.tableInput.Validate()
}
