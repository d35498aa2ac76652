package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"obs-pkgver/internal/app"
)

func newQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <name>",
		Short: "Print the published binary search for a package without sending it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), cmd, strings.Join(args, " "))
		},
	}
	return cmd
}

func runQuery(ctx context.Context, cmd *cobra.Command, rawName string) error {
	service, err := app.NewService(serviceConfig())
	if err != nil {
		return err
	}
	result, err := service.Query(contextOrBackground(ctx), app.QueryRequest{RawName: rawName})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "package: %s\n", result.Query.Package)
	fmt.Fprintf(out, "match: %s\n", result.Query.Match)
	if result.URL != "" {
		fmt.Fprintf(out, "url: %s\n", result.URL)
	}
	return nil
}
