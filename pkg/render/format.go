package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/harrisonrobin/timectl/pkg/config"
	"github.com/harrisonrobin/timectl/pkg/value"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want table, json or yaml)", s)
}

// Document prints the whole document in the requested format.
func (p *Printer) Document(doc *config.Document, format Format) error {
	switch format {
	case FormatJSON:
		data, err := doc.Encode()
		if err != nil {
			return err
		}
		return p.highlight(string(data), "json")
	case FormatYAML:
		data, err := MarshalYAML(doc.Value())
		if err != nil {
			return err
		}
		return p.highlight(string(data), "yaml")
	default:
		p.ConfigTable(doc)
		return nil
	}
}

// highlight colors source with the monokai theme when the output supports it.
func (p *Printer) highlight(source, lexer string) error {
	formatter := chromaFormatter(p.Profile())
	if formatter == "" {
		_, err := p.out.Write([]byte(source))
		return err
	}
	return quick.Highlight(p.out, source, lexer, formatter, "monokai")
}

func chromaFormatter(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	}
	return ""
}

// MarshalYAML renders v as YAML, keeping mapping order.
func MarshalYAML(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNode(v value.Value) *yaml.Node {
	switch v.Kind() {
	case value.KindMap:
		m, _ := v.AsMap()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		m.Range(func(key string, item value.Value) bool {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				yamlNode(item))
			return true
		})
		return node
	case value.KindSeq:
		items, _ := v.AsSeq()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range items {
			node.Content = append(node.Content, yamlNode(item))
		}
		return node
	case value.KindBool:
		b, _ := v.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case value.KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: v.String()}
	case value.KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v.String()}
	case value.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
