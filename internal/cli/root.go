package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"obs-pkgver/internal/adapters"
	"obs-pkgver/internal/app"
	"obs-pkgver/internal/core"
	"obs-pkgver/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "OBS_PKGVER"

type RootConfig struct {
	ConfigFile  string
	LogLevel    string
	Format      string
	TracksFile  string
	OBSEndpoint string
	OBSTimeout  int
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		if core.KindOf(err) == types.ErrorKindNone {
			fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		}
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "obs-pkgver",
		Short:   "Look up published openSUSE package versions",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			log.Debug().Str("version", version).Msg("starting obs-pkgver")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.Format, "format", string(types.OutputFormatPlain), "Output markup (plain, html, markdown, terminal)")
	flags.StringVar(&cfg.TracksFile, "tracks", "", "Track table YAML file (built-in table when empty)")
	flags.StringVar(&cfg.OBSEndpoint, "obs-endpoint", adapters.DefaultOBSEndpoint, "Build service API endpoint")
	flags.IntVar(&cfg.OBSTimeout, "obs-timeout", 30, "Build service request timeout in seconds")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("tracks_file", flags.Lookup("tracks"))
	_ = viper.BindPFlag("obs_endpoint", flags.Lookup("obs-endpoint"))
	_ = viper.BindPFlag("obs_timeout", flags.Lookup("obs-timeout"))

	cmd.AddCommand(newPkgCommand())
	cmd.AddCommand(newQueryCommand())
	cmd.AddCommand(newTracksCommand())
	cmd.AddCommand(newPingCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	// The bare variable names are kept for deployments of the chat bot.
	_ = viper.BindEnv("obs_username", envPrefix+"_OBS_USERNAME", "OBS_USERNAME")
	_ = viper.BindEnv("obs_password", envPrefix+"_OBS_PASSWORD", "OBS_PASSWORD")

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("obs-pkgver")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/obs-pkgver")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func serviceConfig() app.ServiceConfig {
	return app.ServiceConfig{
		OBSEndpoint:   viper.GetString("obs_endpoint"),
		OBSUsername:   viper.GetString("obs_username"),
		OBSPassword:   viper.GetString("obs_password"),
		OBSTimeoutSec: viper.GetInt("obs_timeout"),
		Format:        types.OutputFormat(viper.GetString("format")),
		TracksFile:    viper.GetString("tracks_file"),
	}
}

func exitCodeForError(err error) int {
	switch core.KindOf(err) {
	case types.ErrorKindEmptyInput:
		return 2
	case types.ErrorKindFetchFailed:
		return 5
	case types.ErrorKindMalformedResponse, types.ErrorKindMissingAttribute, types.ErrorKindMalformedPatchInfo:
		return 6
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
