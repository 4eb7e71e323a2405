package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"robowarehouse/internal/model"
)

func newResolveCmd(a *app) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "resolve LABEL",
		Short: "Resolve a label to its display image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.loadResolver(cmd.Context())
			if err != nil {
				return err
			}

			var fb *string
			if cmd.Flags().Changed("fallback") {
				fb = &fallback
			}

			label := args[0]
			canonical, _ := resolver.Normalize(&label)
			image, ok := resolver.Resolve(&label, fb)

			if a.json() {
				return a.writeJSON(model.ResolveResponse{
					Label:     label,
					Canonical: canonical,
					ImageURL:  image,
				})
			}
			if !ok {
				fmt.Fprintf(a.out, "%s\t(no image)\n", orDashStr(canonical))
				return nil
			}
			fmt.Fprintf(a.out, "%s\t%s\n", orDashStr(canonical), image)
			return nil
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "Image URL to use when the catalog has no entry")
	return cmd
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize LABEL",
		Short: "Print the canonical form of a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := a.loadResolver(cmd.Context())
			if err != nil {
				return err
			}

			label := args[0]
			canonical, _ := resolver.Normalize(&label)

			if a.json() {
				return a.writeJSON(model.ResolveResponse{Label: label, Canonical: canonical})
			}
			fmt.Fprintln(a.out, orDashStr(canonical))
			return nil
		},
	}
}
