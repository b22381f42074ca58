package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"northstar/internal/client"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newCandidatesCmd(cc *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Browse and decide on funding candidates",
	}

	var p client.ListParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List candidates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			page, err := cl.ListCandidates(cmd.Context(), p)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTATE\tVERSION\tSOURCE\tNAME")
			for _, c := range page.Items {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", c.Id, c.State, c.Version, c.Source, c.Name)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if page.NextCursor != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nnext page: --cursor %s\n", page.NextCursor)
			}
			return nil
		},
	}
	list.Flags().StringSliceVar(&p.States, "state", nil, "filter by lifecycle state (repeatable)")
	list.Flags().StringVarP(&p.Query, "query", "q", "", "case-insensitive text search")
	list.Flags().StringVar(&p.Source, "source", "", "filter by source domain")
	list.Flags().StringVar(&p.Session, "session", "", "filter by discovery session id")
	list.Flags().StringVar(&p.Sort, "sort", "", "sort order: discovered or name")
	list.Flags().IntVar(&p.Limit, "limit", 0, "page size (1-200)")
	list.Flags().StringVar(&p.Cursor, "cursor", "", "resume after a previous page")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a candidate with its contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			c, err := cl.GetCandidate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}

	var version int64
	var notes string
	approve := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve an enhanced candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			c, err := cl.Approve(cmd.Context(), args[0], version, notes)
			if err != nil {
				return conflictHint(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s approved (version %d)\n", c.Id, c.Version)
			return nil
		},
	}
	approve.Flags().Int64Var(&version, "version", 0, "version the decision is based on")
	approve.Flags().StringVar(&notes, "notes", "", "approval notes")
	_ = approve.MarkFlagRequired("version")

	var reason string
	reject := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject an enhanced candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := cc.client()
			if err != nil {
				return err
			}
			c, err := cl.Reject(cmd.Context(), args[0], version, reason)
			if err != nil {
				return conflictHint(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s rejected (version %d)\n", c.Id, c.Version)
			return nil
		},
	}
	reject.Flags().Int64Var(&version, "version", 0, "version the decision is based on")
	reject.Flags().StringVar(&reason, "reason", "", "rejection reason (required)")
	_ = reject.MarkFlagRequired("version")
	_ = reject.MarkFlagRequired("reason")

	cmd.AddCommand(list, get, approve, reject)
	return cmd
}

// conflictHint turns a 409 into an instruction to reload.
func conflictHint(err error) error {
	if current, ok := client.IsConflict(err); ok && current > 0 {
		return fmt.Errorf("%w\nthe candidate changed; reload it (current version %d) and retry", err, current)
	}
	return err
}
