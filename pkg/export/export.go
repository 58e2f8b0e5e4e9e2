// Package export renders a store in alternative configuration formats.
// The INI file stays the source of truth; exports are one-way conversions
// for consumption by other tooling. Absence tokens are exported verbatim.
package export

import (
	"encoding/json"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sectconf/sectconf/pkg/errors"
	"github.com/sectconf/sectconf/pkg/store"
)

// Supported export formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// Formats returns the supported format names
func Formats() []string {
	return []string{FormatTOML, FormatYAML, FormatJSON, FormatXML}
}

// Render serializes the store contents in the given format
func Render(st *store.Store, format string) ([]byte, error) {
	switch format {
	case FormatTOML:
		return renderTOML(st)
	case FormatYAML:
		return renderYAML(st)
	case FormatJSON:
		return renderJSON(st)
	case FormatXML:
		return renderXML(st)
	default:
		return nil, errors.Newf(errors.ErrExportFormat, "unsupported export format %q", format)
	}
}

func renderTOML(st *store.Store) ([]byte, error) {
	data, err := toml.Marshal(st.Snapshot())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExportEncode, "failed to encode TOML")
	}
	return data, nil
}

func renderYAML(st *store.Store) ([]byte, error) {
	data, err := yaml.Marshal(st.Snapshot())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExportEncode, "failed to encode YAML")
	}
	return data, nil
}

func renderJSON(st *store.Store) ([]byte, error) {
	data, err := json.MarshalIndent(st.Snapshot(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExportEncode, "failed to encode JSON")
	}
	return append(data, '\n'), nil
}

// renderXML walks the store in file order so the XML output mirrors the
// INI layout, unlike the map-based encoders which sort keys.
func renderXML(st *store.Store) ([]byte, error) {
	snapshot := st.Snapshot()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("config")
	for _, section := range st.Sections() {
		sec := root.CreateElement("section")
		sec.CreateAttr("name", section)
		for _, key := range st.Keys(section) {
			k := sec.CreateElement("key")
			k.CreateAttr("name", key)
			k.SetText(snapshot[section][key])
		}
	}
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrExportEncode, "failed to encode XML")
	}
	return data, nil
}
