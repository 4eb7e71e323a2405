package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"robowarehouse/internal/model"
)

func newInventoryCmd(a *app) *cobra.Command {
	var (
		query string
		items bool
	)

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List inventory grouped by label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			if items {
				list, err := svc.ListInventoryItems(cmd.Context(), query)
				if err != nil {
					return err
				}
				if a.json() {
					return a.writeJSON(model.InventoryItemsResponse{Items: list, Total: len(list)})
				}
				a.printInventoryItems(list)
				return nil
			}

			groups, err := svc.ListInventory(cmd.Context(), query)
			if err != nil {
				return err
			}
			if a.json() {
				return a.writeJSON(model.InventoryResponse{Groups: groups, Total: len(groups)})
			}
			a.printInventoryGroups(groups)
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "q", "", "Search by label")
	cmd.Flags().BoolVar(&items, "items", false, "List individual items instead of groups")
	return cmd
}

func (a *app) printInventoryGroups(groups []model.InventoryGroupView) {
	if len(groups) == 0 {
		fmt.Fprintln(a.errOut, "No inventory")
		return
	}

	w, flush := a.tableWriter()
	defer flush()
	fmt.Fprintln(w, "LABEL\tQTY\tAVG CONFIDENCE\tLATEST\tIMAGE")
	for _, g := range groups {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
			orDash(g.Label), g.Count, percent(g.AvgConfidence), orDash(g.LatestCreatedAt), orDashStr(g.ImageURL))
	}
}

func (a *app) printInventoryItems(items []model.InventoryItemView) {
	if len(items) == 0 {
		fmt.Fprintln(a.errOut, "No inventory")
		return
	}

	w, flush := a.tableWriter()
	defer flush()
	fmt.Fprintln(w, "ID\tLABEL\tCONFIDENCE\tCREATED\tIMAGE")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			it.ID, orDash(it.Label), percent(it.Confidence), it.CreatedAt, orDashStr(it.ImageURL))
	}
}
