package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"northstar/internal/client"
)

// cliContext carries the global flags to every subcommand.
type cliContext struct {
	server string
	actor  string
}

func (c *cliContext) client() (*client.Client, error) {
	return client.New(c.server, client.WithActor(c.actor))
}

func newRootCmd() *cobra.Command {
	cc := &cliContext{}
	root := &cobra.Command{
		Use:           "northstar",
		Short:         "Funding candidate review and approval service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cc.server, "server", envOr("NORTHSTAR_URL", "http://localhost:8080"), "API base URL used by client commands")
	root.PersistentFlags().StringVar(&cc.actor, "actor", envOr("NORTHSTAR_ACTOR", os.Getenv("USER")), "operator name recorded on mutations")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newCandidatesCmd(cc),
		newDiscoveryCmd(cc),
	)
	return root
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
