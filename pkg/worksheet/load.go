package worksheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Format is a worksheet file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// projectFiles are tried in order by LoadProject.
var projectFiles = []string{"worksheet.yaml", "worksheet.yml", "worksheet.hcl"}

// FormatOf picks the syntax from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("unsupported worksheet extension %q", filepath.Ext(path))
}

// Load reads a worksheet from a YAML or HCL file.
func Load(path string) (*Worksheet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading worksheet file: %w", err)
	}
	return Parse(data, path, format)
}

// LoadProject loads a worksheet from a directory.
// It looks for worksheet.yaml, worksheet.yml, then worksheet.hcl.
func LoadProject(dir string) (*Worksheet, error) {
	for _, name := range projectFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return nil, fmt.Errorf("no worksheet file in %s (tried %s)", dir, strings.Join(projectFiles, ", "))
}

// Parse decodes worksheet source. filename is only used in diagnostics.
func Parse(data []byte, filename string, format Format) (*Worksheet, error) {
	switch format {
	case FormatYAML:
		var ws Worksheet
		if err := yaml.Unmarshal(data, &ws); err != nil {
			return nil, fmt.Errorf("parsing worksheet YAML: %w", err)
		}
		return &ws, nil
	case FormatHCL:
		return parseHCL(data, filename)
	}
	return nil, fmt.Errorf("unsupported worksheet format %q", format)
}

type hclRoot struct {
	Version   string     `hcl:"version,optional"`
	Precision *int       `hcl:"precision,optional"`
	Steps     []*hclStep `hcl:"step,block"`
}

type hclStep struct {
	Name   string      `hcl:"name,label"`
	Op     string      `hcl:"op"`
	Value  *hclOperand `hcl:"value,block"`
	Other  *hclOperand `hcl:"other,block"`
	To     string      `hcl:"to,optional"`
	Scalar string      `hcl:"scalar,optional"`
}

type hclOperand struct {
	Magnitude string `hcl:"magnitude"`
	Unit      string `hcl:"unit"`
}

func parseHCL(data []byte, filename string) (*Worksheet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing worksheet HCL %s: %w", filename, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("decoding worksheet HCL %s: %w", filename, diags)
	}

	ws := &Worksheet{Version: root.Version, Precision: root.Precision}
	for _, s := range root.Steps {
		step := Step{Name: s.Name, Op: Op(s.Op), To: s.To, Scalar: s.Scalar}
		if s.Value != nil {
			step.Value = Operand(*s.Value)
		}
		if s.Other != nil {
			other := Operand(*s.Other)
			step.Other = &other
		}
		ws.Steps = append(ws.Steps, step)
	}
	return ws, nil
}
