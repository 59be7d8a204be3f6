package cli

import (
	"fmt"
	"stegno/internal/logging"
	"stegno/pkg/config"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "STEGNO"

// options is the viper-resolved configuration shared by every command. Precedence is flags, then STEGNO_* env vars,
// then the config file, then flag defaults.
type options struct {
	Sentinel      uint8  `mapstructure:"sentinel"`
	LogLevel      string `mapstructure:"log-level"`
	CPUProfile    string `mapstructure:"cpu-profile"`
	MemProfileDir string `mapstructure:"mem-profile-dir"`
	Port          string `mapstructure:"port"`
}

type app struct {
	viper      *viper.Viper
	configFile string

	opts          options
	carrierConfig config.CarrierConfig
	logger        *logging.Logger
}

func RootCommand() *cobra.Command {
	a := &app{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "stegno",
		Short:        "Steganography toolkit written in Go",
		Long:         "Hides text messages in the least significant bits of carrier files, such as uncompressed bitmaps, and reads them back",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			StopProfilers()
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (yaml, toml or json) with defaults for the flags below")
	flags.Uint8("sentinel", config.DefaultSentinel, "Byte value marking the end of the hidden message. Must be ASCII and must not occur in the message")
	flags.String("log-level", "info", "Log level. Options are debug, info, warn, error")
	flags.String("cpu-profile", "", "Dump CPU profile into the supplied file")
	flags.String("mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(readCommand(a), writeCommand(a), capacityCommand(a), serveCommand(a))
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	v := a.viper
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", a.configFile, err)
		}
	}

	if err := v.Unmarshal(&a.opts); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	level, err := logging.ParseLevel(a.opts.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logging.BuildLogger(cmd.ErrOrStderr(), level)

	a.carrierConfig = config.CarrierConfig{Sentinel: a.opts.Sentinel}
	a.carrierConfig.PopulateUnsetConfigVars()
	if err = a.carrierConfig.Validate(); err != nil {
		return err
	}

	return StartProfilers(a.opts.CPUProfile, a.opts.MemProfileDir, a.logger)
}
