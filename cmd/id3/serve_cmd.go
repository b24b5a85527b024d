package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pbanos/id3/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

type serveCmdConfig struct {
	growConfig
	addr           string
	allowedOrigins []string
}

func serveCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &serveCmdConfig{growConfig: growConfig{tableInput: tableInput{rootCmdConfig: rootConfig}}}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve predictions over HTTP",
		Long:  `Grow a tree and serve it over HTTP: GET /tree shows it and POST /classify predicts the label for a JSON object of feature values`,
		Run: func(cmd *cobra.Command, args []string) {
			tree, code, err := config.Grow()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(code)
			}
			srv := &http.Server{
				Addr:    config.addr,
				Handler: server.NewRouter(server.NewHandler(tree), config.allowedOrigins),
			}
			go func() {
				<-config.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			config.Logf("Serving tree on %s...", config.addr)
			err = srv.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	config.addFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVarP(&(config.addr), "addr", "a", ":8080", "address to listen on")
	cmd.PersistentFlags().StringSliceVar(&(config.allowedOrigins), "allowed-origins", nil, "origins allowed to make cross-origin requests")
	return cmd
}
