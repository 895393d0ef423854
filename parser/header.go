/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"bennypowers.dev/vbo/parser/common"
	"bennypowers.dev/vbo/record"
)

const creationDatePrefix = "File created on"

// Section markers recognized in the header.
const (
	markerHeader       = "[header]"
	markerChannelUnits = "[channel units]"
	markerComments     = "[comments]"
	markerColumnNames  = "[column names]"
	markerLapTiming    = "[laptiming]"
)

// ParseHeader parses the text before the [data] marker.
//
// Lines are visited once, top to bottom. Each step function takes the
// position of its first line and returns the position of the first line it
// did not consume, so the cursor only moves forward. A section body ends at a
// blank line or at the next marker, which is then dispatched normally.
func ParseHeader(content string, opts Options) (record.Header, error) {
	lines := trimmedLines(content)
	log := opts.logger()

	header := record.Header{
		ChannelUnits: []string{},
		Comments:     []string{},
		LapTiming:    []record.LapTimingPoint{},
	}

	for pos := 0; pos < len(lines); {
		line := lines[pos]

		switch {
		case strings.HasPrefix(line, creationDatePrefix):
			date, err := common.ParseCreationDate(strings.TrimPrefix(line, creationDatePrefix), opts.Location)
			if err != nil {
				return record.Header{}, err
			}
			header.CreationDate = date
			pos++

		case line == markerHeader:
			// Legacy layout: one column per line under [header].
			header.ColumnNames, pos = scanSection(lines, pos+1)

		case line == markerChannelUnits:
			header.ChannelUnits, pos = scanSection(lines, pos+1)

		case line == markerComments:
			var body []string
			body, pos = scanSection(lines, pos+1)
			applyComments(&header, body)

		case line == markerColumnNames:
			header.ColumnNames, pos = scanColumnNames(lines, pos+1)

		case line == markerLapTiming:
			var body []string
			body, pos = scanSection(lines, pos+1)
			header.LapTiming = parseLapTiming(body, log)

		default:
			pos++
		}
	}

	if len(header.ColumnNames) == 0 {
		return record.Header{}, missingColumnNames()
	}

	return header, nil
}

// trimmedLines splits content on newlines and trims each line.
func trimmedLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

func isSectionEnd(line string) bool {
	return common.IsEmptyLine(line) || strings.HasPrefix(line, "[")
}

// scanSection collects lines from pos up to the next blank line or marker.
func scanSection(lines []string, pos int) ([]string, int) {
	body := []string{}
	for pos < len(lines) && !isSectionEnd(lines[pos]) {
		body = append(body, lines[pos])
		pos++
	}
	return body, pos
}

// scanColumnNames reads the single schema line following [column names].
func scanColumnNames(lines []string, pos int) ([]string, int) {
	if pos >= len(lines) || strings.HasPrefix(lines[pos], "[") {
		return nil, pos
	}
	return common.SplitLine(lines[pos]), pos + 1
}

// applyComments classifies [comments] lines into device info and free text.
func applyComments(header *record.Header, body []string) {
	info := &header.VboxInfo
	for _, line := range body {
		switch {
		case strings.HasPrefix(line, "VBox"):
			info.Version, _ = common.ExtractValue(line, common.VersionPattern)
		case strings.HasPrefix(line, "GPS"):
			info.GPSType, _ = common.ExtractValue(line, common.GPSPattern)
		case strings.HasPrefix(line, "Serial Number"):
			info.SerialNumber, _ = common.ExtractValue(line, common.SerialNumberPattern)
		case strings.HasPrefix(line, "CF Version"):
			info.CFVersion, _ = common.ExtractValue(line, common.CFVersionPattern)
		case strings.HasPrefix(line, "Log Rate"):
			info.LogRate = parseLogRate(line)
		case strings.HasPrefix(line, "Software Version"):
			info.SoftwareVersion, _ = common.ExtractValue(line, common.SoftwareVersionPattern)
		case strings.HasPrefix(line, "Security Code"):
			if _, code, found := strings.Cut(line, ":"); found {
				header.SecurityCode = strings.TrimSpace(code)
			}
		default:
			header.Comments = append(header.Comments, line)
		}
	}
}

// parseLogRate returns the Hz value of a "Log Rate (Hz) : 10.00" line, or 0.
func parseLogRate(line string) float64 {
	rate, ok := common.ExtractValue(line, common.LogRatePattern)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rate), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseLapTiming decodes [laptiming] lines of the form
//
//	Label +LatStart +LngStart +LatEnd +LngEnd ¬ Description
//
// Lines with fewer than five fields are ignored.
func parseLapTiming(body []string, log logrus.FieldLogger) []record.LapTimingPoint {
	points := []record.LapTimingPoint{}
	for _, line := range body {
		parts := common.SplitLine(line)
		if len(parts) < 5 {
			continue
		}
		point, err := lapTimingPoint(parts)
		if err != nil {
			log.WithFields(logrus.Fields{
				"line":   line,
				"reason": err.Error(),
			}).Warn("skipping malformed lap timing line")
			continue
		}
		points = append(points, point)
	}
	return points
}

func lapTimingPoint(parts []string) (record.LapTimingPoint, error) {
	var coords [4]string
	for i, tok := range parts[1:5] {
		mag, positive := common.SplitSign(tok)
		isLatitude := i%2 == 0
		if !isLatitude {
			// Lap timing longitude is signed opposite to the data columns.
			positive = !positive
		}
		c, err := common.ConvertCoordinate(mag, positive, isLatitude)
		if err != nil {
			return record.LapTimingPoint{}, err
		}
		coords[i] = c
	}

	return record.LapTimingPoint{
		Label:       parts[0],
		Start:       record.Coordinates{Latitude: coords[0], Longitude: coords[1]},
		End:         record.Coordinates{Latitude: coords[2], Longitude: coords[3]},
		Description: cleanDescription(parts[5:]),
	}, nil
}

// cleanDescription joins the trailing fields and strips the ¬ separator and control characters.
func cleanDescription(parts []string) string {
	joined := strings.Join(parts, " ")
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '¬' || unicode.IsControl(r) {
			return -1
		}
		return r
	}, joined))
}
