package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/paraid/identifier"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "validate <id>...",
		Short:        "check that identifiers are version 5 UUIDs",
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, id := range args {
				if vErr := identifier.Validate(id); vErr != nil {
					failed++
					if _, err := fmt.Fprintln(cmd.ErrOrStderr(), vErr); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s ok\n", id); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d identifiers invalid", failed, len(args))
			}
			return nil
		},
	}
}
