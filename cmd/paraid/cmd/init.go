package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/paraid/project"
)

func initCmd(opts *options) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "create a project file with a new namespace",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			URL := opts.v.GetString(projectFlag)
			if URL == "" {
				URL = project.DefaultLocation
			}
			p, err := project.New(nil).Init(cmd.Context(), URL, name)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %s with namespace %s\n", URL, p.ID)
			return err
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "project name")
	return cmd
}
