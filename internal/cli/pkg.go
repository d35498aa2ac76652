package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"obs-pkgver/internal/app"
	"obs-pkgver/internal/core"
)

type pkgOptions struct {
	Strict bool
}

func newPkgCommand() *cobra.Command {
	opts := pkgOptions{}
	cmd := &cobra.Command{
		Use:   "pkg <name>",
		Short: "Query an openSUSE package version",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPkg(cmd.Context(), cmd, opts, strings.Join(args, " "))
		},
	}
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit non-zero when the lookup fails")
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func runPkg(ctx context.Context, cmd *cobra.Command, opts pkgOptions, rawName string) error {
	service, err := app.NewService(serviceConfig())
	if err != nil {
		return err
	}
	ctx = log.Logger.WithContext(contextOrBackground(ctx))

	result, lookupErr := service.Lookup(ctx, app.LookupRequest{RawName: rawName})
	text := core.NewFormatter(service.Markup).Render(result.Summary, lookupErr)
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if lookupErr != nil && resolveBool(cmd, opts.Strict, "strict", "strict") {
		return lookupErr
	}
	return nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
