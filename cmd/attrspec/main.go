package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/attrspec/attrspec/deconstruct"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "show":
		showCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "attrspec CLI\n\nUsage:\n  attrspec show model.yaml\n  attrspec diff old.yaml new.yaml\n\nNotes:\n  - show prints the canonical deconstructed form of every attribute.\n  - diff compares two model definitions and exits 1 when they differ.")
}

func showCmd(args []string) {
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}
	meta, err := loadModel(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("load model")
		os.Exit(1)
	}
	out := map[string]deconstruct.Form{}
	for name, fm := range meta.Forms() {
		out[name] = fm
	}
	b, err := json.MarshalIndent(map[string]any{"model": meta.ModelName(), "attributes": out}, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("encode forms")
		os.Exit(1)
	}
	fmt.Println(string(b))
}

func diffCmd(args []string) {
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	oldMeta, err := loadModel(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("load model")
		os.Exit(1)
	}
	newMeta, err := loadModel(args[1])
	if err != nil {
		log.Error().Err(err).Str("file", args[1]).Msg("load model")
		os.Exit(1)
	}
	changes := deconstruct.Diff(oldMeta.Forms(), newMeta.Forms())
	if len(changes) == 0 {
		log.Info().Str("old", args[0]).Str("new", args[1]).Msg("schemas are equivalent")
		return
	}
	for _, c := range changes {
		ev := log.Warn().Str("attribute", c.Name).Str("kind", string(c.Kind))
		if c.Old != nil {
			ev = ev.Str("old", c.Old.String())
		}
		if c.New != nil {
			ev = ev.Str("new", c.New.String())
		}
		ev.Msg("schema change")
	}
	b, err := json.MarshalIndent(changes, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("encode changes")
		os.Exit(1)
	}
	fmt.Println(string(b))
	os.Exit(1)
}
