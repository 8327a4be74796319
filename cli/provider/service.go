package provider

import (
	"context"
	"errors"

	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/platform/schema"
	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/service/compare"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	logger *zap.Logger
	cfg    *config.Config
}

func NewServiceProvider(logger *zap.Logger, cfg *config.Config) *ServiceProvider {
	return &ServiceProvider{
		logger: logger,
		cfg:    cfg,
	}
}

func (n *ServiceProvider) GetService(_ context.Context, cmd string) (interface{}, error) {
	switch cmd {
	case "compare", "settings":
		schemaDB := schema.New(n.logger, n.cfg.SchemaPath, n.cfg.DocURLBase)
		return compare.New(n.logger, n.cfg, schemaDB), nil
	default:
		return nil, errors.New("invalid command")
	}
}
