package cli

import (
	"context"

	"github.com/open-dynaMIX/qutebrowser-compare-config/config"
	"github.com/open-dynaMIX/qutebrowser-compare-config/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCustomHelpTemplate = `{{.Short}}

Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
`

var rootExamples = `
  Compare the default config location:
	qutebrowser-compare-config compare

  Compare explicit files and directories:
	qutebrowser-compare-config compare ~/.config/qutebrowser ./extra-config.py

  Only names, only missing settings:
	qutebrowser-compare-config compare -m --naked
`

var versionTemplate = `{{with .Version}}{{printf "qutebrowser-compare-config %s" .}}{{end}}{{"\n"}}`

func Root(ctx context.Context, logger *zap.Logger, conf *config.Config, serviceFactory ServiceFactory, cmdConfigurator CmdConfigurator) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:     "qutebrowser-compare-config",
		Short:   "Find settings for qutebrowser that are not present in the local config and vice versa",
		Example: rootExamples,
		Version: utils.Version,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true

	rootCmd.SetHelpTemplate(rootCustomHelpTemplate)
	rootCmd.SetVersionTemplate(versionTemplate)

	err := cmdConfigurator.AddFlags(rootCmd)
	if err != nil {
		utils.LogError(logger, err, "failed to set root flags")
		return nil
	}

	for _, hook := range Registered {
		rootCmd.AddCommand(hook(ctx, logger, conf, serviceFactory, cmdConfigurator))
	}
	return rootCmd
}
