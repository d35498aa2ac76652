package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"obs-pkgver/internal/app"
)

func newTracksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List the distribution tracks and their rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTracks(cmd)
		},
	}
}

func runTracks(cmd *cobra.Command) error {
	service, err := app.NewService(serviceConfig())
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tOFFICIAL\tUPDATE\tEXPERIMENTAL")
	for _, rule := range service.Tracks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rule.Key, rule.Label, dash(rule.OfficialProject), dash(rule.OfficialUpdateProject), dash(rule.ExperimentalRepository))
	}
	return w.Flush()
}

func dash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
