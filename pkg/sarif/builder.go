package sarif

import (
	"encoding/json"
	"io"
)

// Builder constructs a single-run SARIF document.
type Builder struct {
	doc   *Document
	rules map[string]bool
}

// NewBuilder creates a SARIF builder for the given tool.
func NewBuilder(toolName, toolVersion string) *Builder {
	return &Builder{
		doc: &Document{
			Version: Version,
			Schema:  SchemaURI,
			Runs: []Run{{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: []Result{},
			}},
		},
		rules: make(map[string]bool),
	}
}

func (b *Builder) run() *Run {
	return &b.doc.Runs[0]
}

// AddRule declares a rule on the driver. Repeated ids are ignored.
func (b *Builder) AddRule(id, description string) *Builder {
	if b.rules[id] {
		return b
	}
	b.rules[id] = true
	drv := &b.run().Tool.Driver
	drv.Rules = append(drv.Rules, Rule{ID: id, ShortDescription: Message{Text: description}})
	return b
}

// AddArtifact records a file that was analysed, with optional properties.
func (b *Builder) AddArtifact(uri string, props Properties) *Builder {
	a := Artifact{Location: ArtifactLocation{URI: uri}}
	if len(props) > 0 {
		a.Properties = &props
	}
	b.run().Artifacts = append(b.run().Artifacts, a)
	return b
}

// AddResult adds a diagnostic result to the run. A zero line omits the region.
func (b *Builder) AddResult(ruleID, level, message, file string, line, col int) *Builder {
	r := Result{
		RuleID:  ruleID,
		Level:   level,
		Message: Message{Text: message},
	}
	if file != "" {
		loc := Location{PhysicalLocation: PhysicalLocation{
			ArtifactLocation: ArtifactLocation{URI: file},
		}}
		if line > 0 {
			loc.PhysicalLocation.Region = &Region{StartLine: line, StartColumn: col}
		}
		r.Locations = []Location{loc}
	}
	b.run().Results = append(b.run().Results, r)
	return b
}

// SetProperty sets a run-level property.
func (b *Builder) SetProperty(key, value string) *Builder {
	if b.run().Properties == nil {
		b.run().Properties = &Properties{}
	}
	(*b.run().Properties)[key] = value
	return b
}

// Document returns the constructed SARIF document.
func (b *Builder) Document() *Document {
	return b.doc
}

// WriteTo writes the SARIF document as indented JSON to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	data, err := json.MarshalIndent(b.doc, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	n, err := w.Write(data)
	return int64(n), err
}
