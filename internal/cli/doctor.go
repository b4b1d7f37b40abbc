package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/randquote/internal/ports"
)

// errUnhealthy is returned when any provider check fails.
type errUnhealthy struct {
	failed int
	total  int
}

func (e *errUnhealthy) Error() string {
	return fmt.Sprintf("%d of %d providers unhealthy", e.failed, e.total)
}

func newDoctorCmd(flags *rootFlags, build BuildInfo) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that each quote provider answers",
		Long: `doctor requests one quote from every provider, one after another, and
reports whether the response could be decoded. It exits non-zero if any
provider fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := newRuntime(ctx, flags.loadOptions(cmd), build, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.close(context.WithoutCancel(ctx))

			registry := ports.NewHealthRegistry()
			for _, p := range rt.providers {
				if err := registry.Register(p); err != nil {
					return fmt.Errorf("registering %s: %w", p.Name(), err)
				}
			}

			result := registry.CheckAll(rt.withRequest(ctx))

			out := cmd.OutOrStdout()
			if asJSON {
				err = writeHealthJSON(out, result)
			} else {
				err = writeHealth(out, result, colorsAllowed(out))
			}

			if err != nil {
				return err
			}

			return healthError(result)
		},
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print results as JSON")

	return cmd
}

func healthError(result *ports.HealthResult) error {
	if result.Status == ports.HealthStatusHealthy {
		return nil
	}

	failed := 0
	for _, c := range result.Checks {
		if c.Status != ports.HealthStatusHealthy {
			failed++
		}
	}

	return &errUnhealthy{failed: failed, total: len(result.Checks)}
}

func writeHealth(w io.Writer, result *ports.HealthResult, colored bool) error {
	ok := color.New(color.FgGreen)
	fail := color.New(color.FgRed)

	if colored {
		ok.EnableColor()
		fail.EnableColor()
	} else {
		ok.DisableColor()
		fail.DisableColor()
	}

	for _, c := range result.Checks {
		status := ok.Sprint("ok  ")
		if c.Status != ports.HealthStatusHealthy {
			status = fail.Sprint("fail")
		}

		line := fmt.Sprintf("%s %-12s %s", status, c.Name, c.Duration.Round(time.Millisecond))
		if c.Message != "" {
			line += "  " + c.Message
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

func writeHealthJSON(w io.Writer, result *ports.HealthResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}
