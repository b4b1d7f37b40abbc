package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/randquote/internal/adapters/clients/acl"
)

func newProvidersCmd(flags *rootFlags, build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List available quote providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := newRuntime(cmd.Context(), flags.loadOptions(cmd), build, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.close(context.WithoutCancel(cmd.Context()))

			endpoints := map[string]string{
				acl.ForismaticName: rt.cfg.Providers.Forismatic.BaseURL,
				acl.HapesireName:   rt.cfg.Providers.Hapesire.BaseURL,
			}

			out := cmd.OutOrStdout()
			for _, name := range rt.dispatcher.Providers() {
				marker := " "
				if name == rt.dispatcher.DefaultName() {
					marker = "*"
				}

				if _, err := fmt.Fprintf(out, "%s %-12s %s\n", marker, name, endpoints[name]); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
