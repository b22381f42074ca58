package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"northstar/internal/api"
)

func newDiscoveryCmd(cc *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discovery",
		Short: "Trigger and inspect discovery sessions",
	}

	var req api.TriggerDiscoveryRequest
	var kind string
	trigger := &cobra.Command{
		Use:   "trigger",
		Short: "Queue a discovery session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			req.Kind = api.SessionKind(kind)
			s, err := cl.TriggerDiscovery(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %s queued for %s\n", s.Id, s.Config.Source)
			return nil
		},
	}
	trigger.Flags().StringVar(&req.Config.Source, "source", "", "source to search, e.g. grants.gov")
	trigger.Flags().StringSliceVar(&req.Config.Queries, "query", nil, "search query (repeatable)")
	trigger.Flags().StringSliceVar(&req.Config.Engines, "engine", nil, "search engine (repeatable)")
	trigger.Flags().IntVar(&req.Config.MaxResults, "max-results", 0, "stop after this many results")
	trigger.Flags().StringVar(&kind, "kind", "manual", "manual, scheduled or retry")
	_ = trigger.MarkFlagRequired("source")

	var status, source string
	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List sessions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			sessions, err := cl.ListSessions(cmd.Context(), status, source, limit)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATUS\tSOURCE\tFOUND\tDUPLICATES\tCREATED")
			for _, s := range sessions {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", s.Id, s.Status, s.Config.Source,
					s.CandidatesFound, s.DuplicatesDetected, s.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&status, "status", "", "queued, running, completed or failed")
	list.Flags().StringVar(&source, "source", "", "filter by source domain")
	list.Flags().IntVar(&limit, "limit", 0, "maximum sessions (1-200)")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			s, err := cl.GetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s)
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a queued or running session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			s, err := cl.CancelSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %s %s (%s)\n", s.Id, s.Status, s.Error)
			return nil
		},
	}

	cmd.AddCommand(trigger, list, get, cancel)
	return cmd
}
