// Package cli wires the cobra commands to the services behind them.
package cli

import (
	"context"

	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type HookFunc func(ctx context.Context, logger *zap.Logger, conf *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command

// Registered holds the registered command hooks
var Registered map[string]HookFunc

func Register(name string, f HookFunc) {
	if Registered == nil {
		Registered = make(map[string]HookFunc)
	}
	Registered[name] = f
}

type ServiceFactory interface {
	GetService(ctx context.Context, cmd string) (interface{}, error)
}

type CmdConfigurator interface {
	AddFlags(cmd *cobra.Command) error
	Validate(ctx context.Context, cmd *cobra.Command) error
}
