package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"robowarehouse/internal/model"
	"robowarehouse/internal/poller"
)

func newWatchCmd(a *app) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll scans and print them on every refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval <= 0 {
				return fmt.Errorf("--interval must be positive")
			}

			svc, closeFn, err := a.newService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			p := poller.New(svc, interval, a.logger, func(scans []model.ScanView) {
				if a.json() {
					_ = a.writeJSON(model.ScansResponse{Scans: scans, Total: len(scans)})
					return
				}
				fmt.Fprintf(a.out, "-- %s --\n", time.Now().Format(time.TimeOnly))
				a.printScans(scans)
			})

			// Run only returns once the context is done
			_ = p.Run(cmd.Context())
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", a.cfg.PollInterval, "Refresh interval")
	return cmd
}
