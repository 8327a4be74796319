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
	Register("compare", Compare)
}

func Compare(ctx context.Context, logger *zap.Logger, conf *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "compare [paths...]",
		Short:   "compare local config files against the settings qutebrowser knows",
		Example: `qutebrowser-compare-config compare ~/.config/qutebrowser -m -d`,
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return cmdConfigurator.Validate(ctx, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
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

			conf.Paths = args

			// Discrepancies are information, not failures: a completed run
			// exits zero no matter what it found.
			return comparer.Compare(ctx)
		},
	}

	if err := cmdConfigurator.AddFlags(cmd); err != nil {
		utils.LogError(logger, err, "failed to add compare flags")
		return nil
	}

	return cmd
}
