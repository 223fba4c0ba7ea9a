package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/paraid/identifier"
)

// deriveCmds returns one sub command per identifier category.
func deriveCmds(opts *options) []*cobra.Command {
	var ret []*cobra.Command
	for _, category := range identifier.Categories() {
		ret = append(ret, deriveCmd(opts, category))
	}
	return ret
}

func deriveCmd(opts *options, category identifier.Category) *cobra.Command {
	return &cobra.Command{
		Use:          string(category) + " <label>...",
		Short:        fmt.Sprintf("print the %s identifier of each label", category),
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.service(cmd.Context())
			if err != nil {
				return err
			}
			for _, label := range args {
				id, err := srv.Derive(category, label)
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
