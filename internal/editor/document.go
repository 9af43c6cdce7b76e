package editor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk fixture format of an editor session.
type Document struct {
	Readonly bool      `yaml:"readonly,omitempty"`
	Range    Range     `yaml:"range"`
	Text     string    `yaml:"text,omitempty"`
	Elements []Element `yaml:"elements,omitempty"`
}

// DefaultDocument returns the document shown when no fixture is given.
func DefaultDocument() Document {
	elements := TextElements("Canvas editor\n\nRight-click anywhere to open the context menu. Visit ")
	for _, r := range "the docs" {
		elements = append(elements, Element{Value: string(r), Type: TypeHyperlink, URL: "https://github.com/Hufe921/canvas-editor"})
	}
	elements = append(elements, TextElements(" or fill in ")...)
	for _, r := range "name" {
		elements = append(elements, Element{Value: string(r), Type: TypeControl, ControlID: "name"})
	}
	elements = append(elements, TextElements(".\n")...)
	elements = append(elements, Element{Value: "logo", Type: TypeImage, Width: 4, Height: 1, Display: DisplayInline})
	elements = append(elements, TextElements("\n")...)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			for _, r := range fmt.Sprintf("r%dc%d", row, col) {
				elements = append(elements, Element{Value: string(r), Type: TypeTableCell, TableID: "t1", Row: row, Col: col})
			}
			if col < 2 {
				elements = append(elements, Element{Value: " ", Type: TypeTableCell, TableID: "t1", Row: row, Col: col})
			}
		}
		elements = append(elements, Element{Value: "\n"})
	}
	return Document{Range: Range{StartIndex: 2, EndIndex: 2}, Elements: elements}
}

// LoadDocument reads a YAML document fixture. A top-level text field is
// expanded into text elements ahead of any explicit elements.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading document: %w", err)
	}
	return ParseDocument(data)
}

// ParseDocument decodes a YAML document fixture.
func ParseDocument(data []byte) (Document, error) {
	doc := Document{Range: NoRange}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parsing document: %w", err)
	}
	if doc.Text != "" {
		doc.Elements = append(TextElements(doc.Text), doc.Elements...)
		doc.Text = ""
	}
	return doc, nil
}
