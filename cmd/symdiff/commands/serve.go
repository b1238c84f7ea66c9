package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/njchilds90/symdiff/internal/server"
)

func newServeCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP tool server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			return server.ListenAndServe(fmt.Sprintf(":%d", port), logger)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	return cmd
}
