package config

import (
	"bytes"
	"encoding/json"

	"github.com/harrisonrobin/timectl/pkg/value"
)

const (
	KeyProjects = "projects"
	KeySettings = "settings"
)

// Document is the whole persisted value. The root is always a mapping.
type Document struct {
	root *value.Map
}

// Empty is what Load returns when nothing is stored yet.
func Empty() *Document {
	root := value.NewMap()
	root.Set(KeyProjects, value.FromMap(value.NewMap()))
	root.Set(KeySettings, value.FromMap(value.NewMap()))
	return &Document{root: root}
}

// Default is the document written by InitializeDefault.
func Default() *Document {
	settings := value.NewMap()
	settings.Set("default_project", value.Null())
	settings.Set("date_format", value.String("%Y-%m-%d"))
	settings.Set("time_format", value.String("%H:%M:%S"))
	settings.Set("auto_pause", value.Bool(true))
	settings.Set("workday_hours", value.Int(8))

	root := value.NewMap()
	root.Set(KeyProjects, value.FromMap(value.NewMap()))
	root.Set(KeySettings, value.FromMap(settings))
	return &Document{root: root}
}

func (d *Document) Root() *value.Map { return d.root }

func (d *Document) Value() value.Value { return value.FromMap(d.root) }

// Projects returns the "projects" subtree, or null when it is absent.
func (d *Document) Projects() value.Value {
	v, _ := d.root.Get(KeyProjects)
	return v
}

// Settings returns the "settings" subtree, or null when it is absent.
func (d *Document) Settings() value.Value {
	v, _ := d.root.Get(KeySettings)
	return v
}

func (d *Document) Equal(other *Document) bool {
	return d.root.Equal(other.root)
}

// Encode renders the document as indented JSON with a trailing newline.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(d.Value()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
