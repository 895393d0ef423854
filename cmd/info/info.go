/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package info provides the info command for vbo.
package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"bennypowers.dev/vbo/cmd/common"
	"bennypowers.dev/vbo/convert/formatter"
	"bennypowers.dev/vbo/fs"
	"bennypowers.dev/vbo/record"
)

// Cmd is the info cobra command.
var Cmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show header information of VBO files",
	Long: `Show the header of each VBO file: creation date, device information,
column schema, lap timing points and row counts.

Examples:
  vbo info session.vbo
  vbo info --format json laps/*.vbo`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown format: %s (valid: table, json)", format)
	}

	session := common.NewSession(fs.NewOSFileSystem(), ".")
	files, err := session.Files(args)
	if err != nil {
		return err
	}

	return report(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), session, files, format)
}

// Summary is the header digest printed for one file.
type Summary struct {
	Path         string                  `json:"path"`
	CreationDate *time.Time              `json:"creationDate,omitempty"`
	VboxInfo     record.VboxInfo         `json:"vboxInfo"`
	SecurityCode string                  `json:"securityCode,omitempty"`
	Columns      []string                `json:"columns"`
	ChannelUnits []string                `json:"channelUnits"`
	Comments     []string                `json:"comments"`
	LapTiming    []record.LapTimingPoint `json:"lapTiming"`
	Rows         int                     `json:"rows"`
	Skipped      int                     `json:"skipped"`
}

// Summarize builds the digest of a parsed file.
func Summarize(path string, file *record.File) Summary {
	h := file.Header
	s := Summary{
		Path:         path,
		VboxInfo:     h.VboxInfo,
		SecurityCode: h.SecurityCode,
		Columns:      h.ColumnNames,
		ChannelUnits: h.ChannelUnits,
		Comments:     h.Comments,
		LapTiming:    h.LapTiming,
		Rows:         len(file.Data),
		Skipped:      len(file.Skipped),
	}
	if !h.CreationDate.IsZero() {
		created := h.CreationDate
		s.CreationDate = &created
	}
	return s
}

func report(ctx context.Context, out, errOut io.Writer, session *common.Session, files []string, format string) error {
	var summaries []Summary
	hasErrors := false

	for _, path := range files {
		file, err := session.Parse(ctx, path)
		if err != nil {
			fmt.Fprintf(errOut, "Error parsing %s: %v\n", path, err)
			hasErrors = true
			continue
		}
		summaries = append(summaries, Summarize(path, file))
	}

	switch format {
	case "json":
		if err := outputJSON(out, summaries); err != nil {
			return err
		}
	default:
		for _, s := range summaries {
			outputTable(out, s)
		}
	}

	if hasErrors {
		return fmt.Errorf("failed to read %d of %d files", len(files)-len(summaries), len(files))
	}
	return nil
}

func outputJSON(out io.Writer, summaries []Summary) error {
	if summaries == nil {
		summaries = []Summary{}
	}
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling summary: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func outputTable(out io.Writer, s Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(s.Path)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value"})

	created := "-"
	if s.CreationDate != nil {
		created = s.CreationDate.Format("2006-01-02 15:04:05 MST")
	}
	info := s.VboxInfo

	t.AppendRows([]table.Row{
		{"Created", created},
		{"VBox Version", orDash(info.Version)},
		{"GPS", orDash(info.GPSType)},
		{"Serial Number", orDash(info.SerialNumber)},
		{"CF Version", orDash(info.CFVersion)},
		{"Log Rate (Hz)", info.LogRate},
		{"Software Version", orDash(info.SoftwareVersion)},
		{"Security Code", orDash(s.SecurityCode)},
	})
	t.AppendSeparator()

	titles := make([]string, len(s.Columns))
	for i, name := range s.Columns {
		titles[i] = formatter.ColumnTitle(name)
	}
	t.AppendRow(table.Row{"Columns", strings.Join(titles, ", ")})
	if len(s.ChannelUnits) > 0 {
		t.AppendRow(table.Row{"Channel Units", strings.Join(s.ChannelUnits, ", ")})
	}
	for _, lap := range s.LapTiming {
		t.AppendRow(table.Row{"Lap Timing " + lap.Label, fmt.Sprintf("%s %s -> %s %s",
			lap.Start.Latitude, lap.Start.Longitude, lap.End.Latitude, lap.End.Longitude)})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"Rows", s.Rows})
	t.AppendRow(table.Row{"Skipped", s.Skipped})

	t.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
