package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/bucketwise/internal/config"
	"github.com/mmynk/bucketwise/pkg/logging"
)

var (
	cfgFile string
)

// cli holds what every subcommand needs once flags and config are parsed.
type cli struct {
	cfg    config.AppConfig
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:          "bucketwise",
		Short:        "Track whose turn it is to buy the water bucket",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
	}

	setupFlags(rootCmd)

	rootCmd.AddCommand(
		c.serveCmd(),
		c.nextCmd(),
		c.payCmd(),
		c.historyCmd(),
		c.tallyCmd(),
		c.resetCmd(),
		c.membersCmd(),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite database path")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("bucket-cost", defaults.GetString("bucket.cost"), "Price of one water bucket")
	cmd.PersistentFlags().String("amqp-url", defaults.GetString("amqp.url"), "RabbitMQ URL for rotation events (empty disables)")
	cmd.PersistentFlags().String("server-url", defaults.GetString("server.url"), "Server URL used by client commands")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "database.path", "database-path")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "bucket.cost", "bucket-cost")
	bindFlag(cmd, "amqp.url", "amqp-url")
	bindFlag(cmd, "server.url", "server-url")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bucketwise")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &configNotFound) {
			return err
		}
	}

	return nil
}

func (c *cli) init() error {
	if err := initConfig(); err != nil {
		return err
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger
	return nil
}
