package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParamsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Show and validate the effective Argon2id cost parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.params()
			if err := p.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "memory_kib:  %d\n", p.MemoryKiB)
			fmt.Fprintf(out, "time:        %d\n", p.Time)
			fmt.Fprintf(out, "parallelism: %d\n", p.Parallelism)
			return nil
		},
	}
}
