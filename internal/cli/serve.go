package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazegen/internal/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve mazes over HTTP",
		Long: `Run the HTTP API until interrupted.

  GET /healthz
  GET /v1/strategies
  GET /v1/maze?height=&width=&strategy=&seed=&min_cycle=&format=
  GET /v1/maze/stream?...   (websocket, cells in visitation order)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.config.Addr
			}
			srv := server.New(loggerFromContext(cmd.Context()))
			printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(addr)))
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", c.config.Addr, "listen address")
	return cmd
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
