package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"robowarehouse/internal/model"
	"robowarehouse/internal/service"
)

func newScansCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scans",
		Short: "List, approve and clear scans",
	}
	cmd.AddCommand(newScansListCmd(a))
	cmd.AddCommand(newScansApproveCmd(a))
	cmd.AddCommand(newScansClearCmd(a))
	return cmd
}

func newScansListCmd(a *app) *cobra.Command {
	var filter service.ScanFilter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List scans",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			scans, err := svc.ListScans(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if a.json() {
				return a.writeJSON(model.ScansResponse{Scans: scans, Total: len(scans)})
			}
			a.printScans(scans)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Query, "q", "", "Search label and OCR text")
	cmd.Flags().StringVar(&filter.Status, "status", service.StatusAll, "Status filter: all|in_progress|completed")
	return cmd
}

func newScansApproveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve ID",
		Short: "Approve a scan into inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid scan id %q", args[0])
			}

			svc, closeFn, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			scan, err := svc.ApproveScan(cmd.Context(), id)
			if err != nil {
				return err
			}

			if a.json() {
				return a.writeJSON(scan)
			}
			fmt.Fprintf(a.out, "Approved scan %d (%s)\n", scan.ID, orDash(scan.Label))
			return nil
		},
	}
}

func newScansClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Remove completed scans; inventory and images are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			deleted, err := svc.ClearCompleted(cmd.Context())
			if err != nil {
				return err
			}

			if a.json() {
				return a.writeJSON(model.ClearCompletedResult{Deleted: deleted})
			}
			fmt.Fprintf(a.out, "Removed %d completed scans\n", deleted)
			return nil
		},
	}
}

func (a *app) printScans(scans []model.ScanView) {
	if len(scans) == 0 {
		fmt.Fprintln(a.errOut, "No scans")
		return
	}

	w, flush := a.tableWriter()
	defer flush()
	fmt.Fprintln(w, "ID\tLABEL\tCONFIDENCE\tSTATUS\tCREATED\tIMAGE")
	for _, s := range scans {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, orDash(s.Label), percent(s.Confidence), s.StatusLabel, s.CreatedAt, orDashStr(s.ImageURL))
	}
}
