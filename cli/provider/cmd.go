// Package provider configures the cobra commands and builds the services
// behind them.
package provider

import (
	"context"
	"errors"

	"github.com/fatih/color"
	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	"github.com/open-dynaMIX/qutebrowser-compare-config/utils"
	"github.com/open-dynaMIX/qutebrowser-compare-config/utils/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type CmdConfigurator struct {
	logger *zap.Logger
	cfg    *config.Config
}

func NewCmdConfigurator(logger *zap.Logger, cfg *config.Config) *CmdConfigurator {
	return &CmdConfigurator{
		logger: logger,
		cfg:    cfg,
	}
}

func (c *CmdConfigurator) AddFlags(cmd *cobra.Command) error {
	var err error
	switch cmd.Name() {
	case "compare":
		cmd.Flags().BoolP("missing", "m", c.cfg.Missing, "only list settings missing from the local config")
		cmd.Flags().BoolP("dropped", "d", c.cfg.Dropped, "only list settings not present in qutebrowser anymore")
		cmd.Flags().BoolP("changedDefaults", "c", c.cfg.ChangedDefaults, "list commented-out settings whose value differs from the current default")
		cmd.Flags().Bool("naked", c.cfg.Naked, "print only setting names, without file/line/URL annotations")
		cmd.Flags().String("schemaPath", c.cfg.SchemaPath, "path to the configdata.yml manifest of the installed qutebrowser")
		cmd.Flags().String("configPath", c.cfg.ConfigPath, "path to the local directory where the compare-config.yml file is stored")
	case "settings":
		cmd.Flags().String("schemaPath", c.cfg.SchemaPath, "path to the configdata.yml manifest of the installed qutebrowser")
	case "qutebrowser-compare-config":
		cmd.PersistentFlags().Bool("debug", c.cfg.Debug, "Run in debug mode")
		cmd.PersistentFlags().Bool("disableANSI", c.cfg.DisableANSI, "Disable ANSI coloring in the output")
		err = viper.BindPFlags(cmd.PersistentFlags())
		if err != nil {
			errMsg := "failed to bind root flags to config"
			utils.LogError(c.logger, err, errMsg)
			return errors.New(errMsg)
		}
	default:
		return errors.New("unknown command name")
	}
	return nil
}

func (c *CmdConfigurator) Validate(_ context.Context, cmd *cobra.Command) error {
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		errMsg := "failed to bind flags to config"
		utils.LogError(c.logger, err, errMsg)
		return errors.New(errMsg)
	}
	if err := utils.BindFlagsToViper(c.logger, cmd, ""); err != nil {
		return err
	}

	if cmd.Name() == "compare" {
		configPath, err := cmd.Flags().GetString("configPath")
		if err != nil {
			utils.LogError(c.logger, nil, "failed to read the config path")
			return err
		}
		if configPath == "" {
			configPath = "."
		}
		viper.SetConfigName("compare-config")
		viper.SetConfigType("yml")
		viper.AddConfigPath(configPath)
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				errMsg := "failed to read config file"
				utils.LogError(c.logger, err, errMsg)
				return errors.New(errMsg)
			}
			c.logger.Debug("config file not found; proceeding with flags only")
		}
	}

	if err := viper.Unmarshal(c.cfg); err != nil {
		errMsg := "failed to unmarshal the config"
		utils.LogError(c.logger, err, errMsg)
		return errors.New(errMsg)
	}

	if c.cfg.Debug {
		logger, err := log.ChangeLogLevel(zap.DebugLevel)
		if err != nil {
			errMsg := "failed to change log level"
			utils.LogError(c.logger, err, errMsg)
			return errors.New(errMsg)
		}
		*c.logger = *logger
	}
	if c.cfg.DisableANSI {
		color.NoColor = true
	}

	c.logger.Debug("config has been initialised", zap.Any("for cmd", cmd.Name()), zap.Any("config", c.cfg))
	return nil
}
