package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digerati-red/dev-smoked-salmon/internal/preflight"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external audio tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := preflight.CheckTools(cfg.Tools)
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = "missing"
					if !status.Optional {
						missing++
					}
				}
				rows = append(rows, []string{
					status.Name,
					status.Command,
					state,
					yesNo(status.Optional),
					status.Detail,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Tool", "Command", "Status", "Optional", "Detail"},
				rows,
				nil,
			))
			if missing > 0 {
				return fmt.Errorf("%d required tool(s) missing", missing)
			}
			return nil
		},
	}
}
