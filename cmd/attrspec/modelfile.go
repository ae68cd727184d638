package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/attrspec/attrspec/deconstruct"
	"github.com/attrspec/attrspec/field"
	"github.com/attrspec/attrspec/record"
)

// modelFile is the YAML shape of a record-type definition:
//
//	model: Article
//	attributes:
//	  - name: title
//	    type: field.Char
//	    args: [100]
//	    kwargs:
//	      unique: true
type modelFile struct {
	Model      string `yaml:"model"`
	Attributes []struct {
		Name   string         `yaml:"name"`
		Type   string         `yaml:"type"`
		Args   []any          `yaml:"args"`
		Kwargs map[string]any `yaml:"kwargs"`
	} `yaml:"attributes"`
}

// loadModel reads a model definition, rebuilds every descriptor through
// the variant registry and binds them onto a fresh Meta.
func loadModel(path string) (*record.Meta, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var mf modelFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if mf.Model == "" {
		return nil, fmt.Errorf("%s: missing model name", path)
	}
	meta := record.NewMeta(mf.Model)
	for _, attr := range mf.Attributes {
		fm := deconstruct.Form{Path: attr.Type, Args: attr.Args, Kwargs: attr.Kwargs}
		f, err := field.Rebuild(fm)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", mf.Model, attr.Name, err)
		}
		if err := meta.Contribute(attr.Name, f); err != nil {
			return nil, err
		}
	}
	return meta, nil
}
