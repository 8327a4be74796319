// Package utils provides shared helpers for the CLI layer.
package utils

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var Emoji = "\U0001F50D" + " compare-config:"

// Version is the version of the CLI and is injected during build by ldflags.
var Version string

// LogError logs the error with the given message and fields. It guards
// against a nil logger so helpers can call it unconditionally.
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if logger == nil {
		fmt.Println(Emoji, "failed to log the error, logger is nil", msg, err)
		return
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Error(msg, fields...)
}

// BindFlagsToViper binds each flag of the command to viper under its own
// name and a matching environment variable, so config file values and env
// vars can stand in for flags.
func BindFlagsToViper(logger *zap.Logger, cmd *cobra.Command, viperKeyPrefix string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		viperKey := flag.Name
		if viperKeyPrefix != "" {
			viperKey = viperKeyPrefix + "." + flag.Name
		}
		if err := viper.BindPFlag(viperKey, flag); err != nil {
			LogError(logger, err, "failed to bind flag to viper", zap.String("flag", flag.Name))
			bindErr = err
			return
		}
		envVarName := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(viperKey))
		if err := viper.BindEnv(viperKey, envVarName); err != nil {
			LogError(logger, err, "failed to bind environment variable", zap.String("env", envVarName))
			bindErr = err
		}
	})
	return bindErr
}

// HandlePanic recovers a panic on the main goroutine so the process exits
// with a readable message instead of a bare stack trace.
func HandlePanic() {
	if r := recover(); r != nil {
		fmt.Println(Emoji, "unexpected panic:", r)
		debug.PrintStack()
		os.Exit(1)
	}
}
