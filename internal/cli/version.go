package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/randquote/internal/platform/config"
)

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n  commit: %s\n  built:  %s\n",
				config.AppName, build.Version, build.Commit, build.BuildTime)

			return err
		},
	}
}
