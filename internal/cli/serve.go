package cli

import (
	"stegno/internal/server"

	"github.com/spf13/cobra"
)

func serveCommand(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to hide and read messages over the web",
		Example: "stegno serve --port 8888",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.New(a.carrierConfig, a.logger).StartServer(a.opts.Port)
		},
	}

	command.Flags().String("port", "8080", "Port on which to start the server")

	return command
}
