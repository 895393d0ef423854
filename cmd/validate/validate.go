/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for vbo.
package validate

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bennypowers.dev/vbo/cmd/common"
	"bennypowers.dev/vbo/fs"
	"bennypowers.dev/vbo/validator"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate VBO files",
	Long: `Validate VBO files: check the header, the column schema and every data row.

Rows that fail to decode are reported with their line number. A file without a
[data] section, without column names, or with a row whose column count differs
from the schema is invalid.

Parsed files are also checked for content that is unlikely to be right:
duplicate columns, channel units that don't match the channels, timestamps
that go backwards, sample spacing that disagrees with the log rate, rows
without a satellite fix and out-of-range coordinates. These are warnings
unless --strict is given.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail when any data row is skipped or a consistency check fails")
}

var (
	okLabel   = color.New(color.FgGreen).SprintFunc()
	warnLabel = color.New(color.FgYellow).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	session := common.NewSession(fs.NewOSFileSystem(), ".")
	files, err := session.Files(args)
	if err != nil {
		return err
	}

	return validateFiles(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), session, files, strict, common.Quiet())
}

func validateFiles(ctx context.Context, out, errOut io.Writer, session *common.Session, files []string, strict, quiet bool) error {
	hasErrors := false

	for _, path := range files {
		if !quiet {
			fmt.Fprintf(out, "Validating %s...\n", path)
		}

		file, err := session.Parse(ctx, path)
		if err != nil {
			fmt.Fprintf(errOut, "%s %s: %v\n", failLabel("FAIL"), path, err)
			hasErrors = true
			continue
		}

		label := warnLabel("WARN")
		if strict {
			label = failLabel("FAIL")
		}

		skipped := len(file.Skipped)
		if skipped > 0 {
			fmt.Fprintf(errOut, "%s %s: %d of %d rows skipped\n", label, path, skipped, skipped+len(file.Data))
			for _, row := range file.Skipped {
				fmt.Fprintf(errOut, "  line %d: %s\n", row.Line, row.Reason)
			}
		}

		opts, _ := session.Options(path)
		issues := validator.Check(file, validator.Options{
			FilePath:       path,
			DecimalDegrees: opts.DecimalDegrees(),
		})
		for _, issue := range issues {
			fmt.Fprintf(errOut, "%s %s\n", label, issue.Error())
		}

		if skipped > 0 || len(issues) > 0 {
			if strict {
				hasErrors = true
			}
			continue
		}

		if !quiet {
			fmt.Fprintf(out, "  %s %d rows, %d columns\n", okLabel("OK"), len(file.Data), len(file.Header.ColumnNames))
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Fprintln(out, "All files valid.")
	}
	return nil
}

