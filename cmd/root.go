/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for vbo.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/vbo/cmd/common"
	"bennypowers.dev/vbo/cmd/convert"
	"bennypowers.dev/vbo/cmd/info"
	"bennypowers.dev/vbo/cmd/validate"
	"bennypowers.dev/vbo/cmd/version"
	"bennypowers.dev/vbo/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "vbo",
	Short: "Parse and work with VBOX telemetry logs",
	Long:  `vbo parses .vbo GPS data logs written by Racelogic VBOX loggers and compatible devices.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := viper.GetString(common.KeyLogLevel)
		if common.Quiet() {
			level = "error"
		}
		logger.SetLevel(level)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool(common.KeyRaw, false, "Keep original tokens instead of decoding numbers")
	flags.Bool(common.KeyConvertCoordinates, true, "Convert lat/long to signed decimal degrees")
	flags.String(common.KeyTimezone, "", "IANA timezone of creation dates (default: local)")
	flags.String(common.KeyLogLevel, "warn", "Log level (debug, info, warn, error)")
	flags.BoolP(common.KeyQuiet, "q", false, "Only output errors")

	viper.SetEnvPrefix("VBO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(convert.Cmd)
	rootCmd.AddCommand(info.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
