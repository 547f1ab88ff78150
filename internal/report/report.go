// Package report renders check results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/straydragon/sddcheck/internal/templates"
	"github.com/straydragon/sddcheck/internal/terminal"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// document is the machine-readable shape of a result.
type document struct {
	Passed      bool                   `json:"passed" yaml:"passed"`
	Primary     *templates.RootResult  `json:"primary" yaml:"primary"`
	Legacy      *templates.RootResult  `json:"legacy,omitempty" yaml:"legacy,omitempty"`
	Diagnostics []templates.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

func newDocument(res *templates.Result) document {
	diags := res.Diagnostics
	if diags == nil {
		diags = []templates.Diagnostic{}
	}
	return document{
		Passed:      res.Passed(),
		Primary:     res.Primary,
		Legacy:      res.Legacy,
		Diagnostics: diags,
	}
}

// Write renders res to w. color only affects text output.
func Write(w io.Writer, res *templates.Result, format Format, color bool) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(res))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(res)); err != nil {
			return err
		}
		return enc.Close()
	default:
		writeText(terminal.NewPrinter(w, color), res)
		return nil
	}
}

func writeText(p *terminal.Printer, res *templates.Result) {
	if !res.Passed() {
		p.Line(p.Style("SDD template checks failed:", terminal.Bold, terminal.Red))
		for _, d := range res.Diagnostics {
			p.Line(p.Style("-", terminal.Red) + " " + d.String())
		}
		return
	}

	msg := "SDD template checks passed for locales: " + strings.Join(res.Primary.Locales, ", ")
	if res.Legacy != nil {
		msg += " (legacy: " + strings.Join(res.Legacy.Locales, ", ") + ")"
	}
	p.Line(p.Style(msg, terminal.Green))
}
