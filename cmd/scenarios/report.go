package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/olekukonko/tablewriter"

	"github.com/qa-demo/casegen/model"
)

// marshalIndent renders v with a two-space indent, without HTML escaping
// and without a trailing newline.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshal json")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func renderMarkdown(record *model.RunRecord) (string, error) {
	completion, err := marshalIndent(record.Completion)
	if err != nil {
		return "", errors.Wrap(err, "render completion")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Scenario: %s\n\n", record.Scenario)
	fmt.Fprintf(&sb, "- Mode: %s\n", record.Mode)
	fmt.Fprintf(&sb, "- Model: %s\n", record.Model)
	fmt.Fprintf(&sb, "- Latency: %d ms\n", record.LatencyMs)
	fmt.Fprintf(&sb, "- Task: %s\n", record.Task)
	fmt.Fprintf(&sb, "- Context:\n\n%s\n\n", record.Context)
	sb.WriteString("## Completion\n\n\n```json\n")
	sb.Write(completion)
	sb.WriteString("\n```")
	return sb.String(), nil
}

// writeReports writes <slug>.json and <slug>.md for record into dir,
// replacing earlier reports of the same scenario.
func writeReports(dir string, record *model.RunRecord) (jsonPath, mdPath string, err error) {
	base := record.ReportBaseName()
	jsonPath = filepath.Join(dir, base+".json")
	mdPath = filepath.Join(dir, base+".md")

	payload, err := marshalIndent(record)
	if err != nil {
		return "", "", errors.Wrap(err, "render json report")
	}
	if err = os.WriteFile(jsonPath, payload, 0o644); err != nil {
		return "", "", errors.Wrapf(err, "write %q", jsonPath)
	}

	md, err := renderMarkdown(record)
	if err != nil {
		return "", "", err
	}
	if err = os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return "", "", errors.Wrapf(err, "write %q", mdPath)
	}

	return jsonPath, mdPath, nil
}

// renderSummary prints one table row per finished scenario.
func renderSummary(w io.Writer, results []runResult) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintln(w)
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scenario", "Mode", "Model", "Latency (ms)", "Report"})
	table.SetAutoWrapText(false)
	for _, res := range results {
		table.Append([]string{
			res.Record.Scenario,
			res.Record.Mode,
			res.Record.Model,
			strconv.FormatInt(res.Record.LatencyMs, 10),
			filepath.Base(res.MDPath),
		})
	}
	table.Render()
}
