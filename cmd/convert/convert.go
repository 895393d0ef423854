/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for vbo.
package convert

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"bennypowers.dev/vbo/cmd/common"
	convertlib "bennypowers.dev/vbo/convert"
	"bennypowers.dev/vbo/fs"
	"bennypowers.dev/vbo/internal/logger"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert VBO files to JSON, YAML or CSV",
	Long: `Convert VBO files to interchange formats.

Output Formats:
  json  Header and rows as an indented JSON document (default)
  yaml  Header and rows as a YAML document
  csv   Data rows only, one column per schema entry
  nmea  One RMC sentence per data row (needs coordinate conversion)

Examples:
  # Print a session as JSON
  vbo convert session.vbo

  # Write decoded rows to a CSV file
  vbo convert --format csv -o session.csv session.vbo

  # Convert several files into a directory, one output per input
  vbo convert --format yaml -o out/ laps/*.vbo

  # Use files and format from .config/vbo.yaml
  vbo convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output file, or directory when converting several files (default: stdout)")
	Cmd.Flags().StringP("format", "f", "json", "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().String("delimiter", ",", "CSV field separator")
	Cmd.Flags().Bool("titles", false, "Use display titles for CSV column headings")
}

// request collects the resolved flags of one convert invocation.
type request struct {
	files   []string
	output  string
	format  convertlib.Format
	options convertlib.Options
}

func run(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	delimiter, _ := cmd.Flags().GetString("delimiter")
	titles, _ := cmd.Flags().GetBool("titles")

	session := common.NewSession(fs.NewOSFileSystem(), ".")

	// Config format applies unless the flag was given.
	if !cmd.Flags().Changed("format") && session.Config.Format != "" {
		formatFlag = session.Config.Format
	}
	format, err := convertlib.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	comma, err := parseDelimiter(delimiter)
	if err != nil {
		return err
	}

	files, err := session.Files(args)
	if err != nil {
		return err
	}

	return convertFiles(cmd.Context(), cmd.OutOrStdout(), session, request{
		files:  files,
		output: output,
		format: format,
		options: convertlib.Options{
			Comma:        comma,
			TitleColumns: titles,
		},
	})
}

func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}

func convertFiles(ctx context.Context, out io.Writer, session *common.Session, req request) error {
	toDir := req.output != "" && (len(req.files) > 1 || strings.HasSuffix(req.output, "/"))
	if toDir {
		if err := session.FS.MkdirAll(req.output, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	for _, path := range req.files {
		file, err := session.Parse(ctx, path)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", path, err)
		}
		if len(file.Skipped) > 0 {
			logger.Warn("%s: skipped %d malformed rows", path, len(file.Skipped))
		}

		opts := req.options
		if parseOpts, err := session.Options(path); err == nil {
			opts.DecimalDegrees = parseOpts.DecimalDegrees()
		}

		data, err := convertlib.Render(file, req.format, opts)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", path, err)
		}

		switch {
		case toDir:
			target := filepath.Join(req.output, outputName(path, req.format))
			if err := session.FS.WriteFile(target, data, 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", target, err)
			}
			logger.Info("wrote %s", target)
		case req.output != "":
			if err := session.FS.WriteFile(req.output, data, 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", req.output, err)
			}
		default:
			if _, err := out.Write(data); err != nil {
				return err
			}
		}
	}

	return nil
}

// outputName swaps the extension of path for the format's.
func outputName(path string, format convertlib.Format) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "." + string(format)
}
