package main

import (
	"context"
	"fmt"
	"os"

	"github.com/open-dynaMIX/qutebrowser-compare-config/cli"
	"github.com/open-dynaMIX/qutebrowser-compare-config/cli/provider"
	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	"github.com/open-dynaMIX/qutebrowser-compare-config/utils"
	"github.com/open-dynaMIX/qutebrowser-compare-config/utils/log"
)

// version is the version of the CLI and will be injected during build by ldflags
// see https://goreleaser.com/customization/build/
var version string

func main() {
	if version == "" {
		version = "dev"
	}
	utils.Version = version

	logger, err := log.New()
	if err != nil {
		fmt.Println(utils.Emoji, "failed to initialise the logger:", err)
		os.Exit(1)
	}
	defer utils.HandlePanic()

	ctx := context.Background()
	conf := config.New()

	serviceProvider := provider.NewServiceProvider(logger, conf)
	cmdConfigurator := provider.NewCmdConfigurator(logger, conf)

	rootCmd := cli.Root(ctx, logger, conf, serviceProvider, cmdConfigurator)
	if rootCmd == nil {
		os.Exit(1)
	}
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Findings never reach this path; only unrecoverable errors do
		// (unknown paths, unavailable schema, bad flags).
		os.Exit(1)
	}
}
