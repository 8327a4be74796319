package cli

import (
	"context"
	"errors"

	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	compareSvc "github.com/open-dynaMIX/qutebrowser-compare-config/pkg/service/compare"
	"github.com/open-dynaMIX/qutebrowser-compare-config/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	Register("settings", Settings)
}

func Settings(ctx context.Context, logger *zap.Logger, _ *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "settings",
		Short:   "list every setting the installed qutebrowser version knows",
		Example: `qutebrowser-compare-config settings`,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cmdConfigurator.Validate(ctx, cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := serviceFactory.GetService(ctx, cmd.Name())
			if err != nil {
				utils.LogError(logger, err, "failed to get service", zap.String("command", cmd.Name()))
				return err
			}
			comparer, ok := svc.(compareSvc.Service)
			if !ok {
				utils.LogError(logger, nil, "service doesn't satisfy compare service interface")
				return errors.New("internal error: invalid compare service")
			}
			return comparer.ListSettings(ctx)
		},
	}

	if err := cmdConfigurator.AddFlags(cmd); err != nil {
		utils.LogError(logger, err, "failed to add settings flags")
		return nil
	}

	return cmd
}
