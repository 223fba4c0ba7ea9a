package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func showCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "print the project namespace",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.service(cmd.Context())
			if err != nil {
				return err
			}
			p := srv.Project()
			out := cmd.OutOrStdout()
			if _, err = fmt.Fprintf(out, "namespace: %s\n", p.ID); err != nil {
				return err
			}
			if p.Name != "" {
				_, err = fmt.Fprintf(out, "name: %s\n", p.Name)
			}
			return err
		},
	}
}
