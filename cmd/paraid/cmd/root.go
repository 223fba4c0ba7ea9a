package cmd

import (
	"context"
	goflag "flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/paraid"
	"github.com/viant/paraid/project"
	"k8s.io/klog/v2"
)

const projectFlag = "project"

// options carries settings shared by all sub commands
type options struct {
	v *viper.Viper
}

// projectURL returns the --project flag or PARAID_PROJECT value, falling back
// to the nearest project file above the working directory.
func (o *options) projectURL(ctx context.Context) (string, error) {
	if URL := o.v.GetString(projectFlag); URL != "" {
		return URL, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return project.New(nil).Locate(ctx, wd)
}

func (o *options) service(ctx context.Context) (*paraid.Service, error) {
	URL, err := o.projectURL(ctx)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("loading project from %s", URL)
	srv, err := paraid.New(ctx, paraid.WithProjectURL(URL))
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("project namespace %s", srv.Project().ID)
	return srv, nil
}

// NewRootCommand builds the paraid command tree
func NewRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}
	rootCmd := &cobra.Command{
		Use:          "paraid",
		SilenceUsage: true,
		Short:        "derive stable workflow, resource and trigger identifiers",
		Long:         `paraid derives deterministic version 5 UUIDs for workflow, resource and trigger names, scoped to the project namespace stored in .para/project.json.`,
	}
	fs := rootCmd.PersistentFlags()
	fs.StringP(projectFlag, "p", "", "project file URL (default: nearest .para/project.json)")
	_ = opts.v.BindPFlag(projectFlag, fs.Lookup(projectFlag))
	opts.v.SetEnvPrefix("PARAID")
	opts.v.AutomaticEnv()

	rootCmd.AddCommand(initCmd(opts), showCmd(opts), validateCmd())
	for _, c := range deriveCmds(opts) {
		rootCmd.AddCommand(c)
	}
	return rootCmd
}

func Execute() {
	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd := NewRootCommand()
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)
	if err := rootCmd.Execute(); err != nil {
		klog.Errorf("paraid: %v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}
