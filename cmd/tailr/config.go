package main

import (
	"errors"
	"fmt"

	"github.com/JackKCWong/tailio"
)

const defaultCount = "10"

// Config is the validated form of the command line.
type Config struct {
	Files     []string
	Mode      tailio.Mode
	Specifier tailio.Specifier
	Quiet     bool
}

type options struct {
	lines   string
	bytes   string
	quiet   bool
	verbose bool
	prof    string
}

// config validates the flags. bytesSet reports whether --bytes was given,
// which selects byte mode even for an empty value.
func (o options) config(files []string, bytesSet bool) (Config, error) {
	if len(files) == 0 {
		return Config{}, errors.New("no files given")
	}

	cfg := Config{
		Files: files,
		Mode:  tailio.LineMode,
		Quiet: o.quiet,
	}

	text := o.lines
	if bytesSet {
		cfg.Mode = tailio.ByteMode
		text = o.bytes
	}

	spec, err := tailio.ParseSpecifier(text)
	if err != nil {
		return Config{}, fmt.Errorf("illegal %s count -- %s", unit(cfg.Mode), text)
	}

	cfg.Specifier = spec
	return cfg, nil
}

func unit(m tailio.Mode) string {
	if m == tailio.ByteMode {
		return "byte"
	}

	return "line"
}
