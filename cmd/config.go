package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initialize() {
	if configFilePath != "" {
		vConfig.SetConfigFile(configFilePath)
		cobra.CheckErr(vConfig.ReadInConfig())
	}

	cobra.CheckErr(bindFlags(rootCmd, vConfig))

	logLevel := zerolog.InfoLevel
	if vConfig.GetBool("verbose") {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	if configFilePath != "" {
		log.Info().Str("config", configFilePath).Msg("Loaded configuration file")
	}
}

// bindFlags wires every cobra flag to viper so values can come from the
// command line, the config file, or SONARCI_* environment variables. Flags
// set on the command line always win.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindErr error
	for _, flags := range []*pflag.FlagSet{cmd.PersistentFlags(), cmd.Flags()} {
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = err
			}
			if !f.Changed && v.IsSet(key) {
				if err := flags.Set(f.Name, v.GetString(key)); err != nil && bindErr == nil {
					bindErr = err
				}
			}
		})
	}
	if bindErr != nil {
		return bindErr
	}

	for _, sub := range cmd.Commands() {
		if err := bindFlags(sub, v); err != nil {
			return err
		}
	}
	return nil
}
