package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/blyfoten/SankeySaldo/internal/api"
)

// newServeCmd creates the serve command, running the same HTTP API as
// cmd/server.
func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Printf("Listening on http://localhost:%s", port)
			return http.ListenAndServe(":"+port, api.NewRouter())
		},
	}
	cmd.Flags().StringVar(&port, "port", "8080", "port to listen on")
	return cmd
}
