package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/JackKCWong/tailio"
)

type App struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
	buf    []byte
}

// Run tails every file in order. A file that cannot be opened or read is
// reported on Stderr and skipped; Run itself only fails on output errors
// that are not tied to a file.
func (a *App) Run(cfg Config) error {
	if a.buf == nil {
		a.buf = make([]byte, 32*1024)
	}

	if a.Logger == nil {
		a.Logger = log.New(io.Discard, "", 0)
	}

	showHeaders := len(cfg.Files) > 1 && !cfg.Quiet
	for i, name := range cfg.Files {
		if err := a.tailFile(cfg, i, name, showHeaders); err != nil {
			fmt.Fprintf(a.Stderr, "%s: %s\n", name, describe(err))
		}
	}

	return nil
}

func (a *App) tailFile(cfg Config, i int, name string, showHeader bool) error {
	fd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()

	if showHeader {
		sep := ""
		if i > 0 {
			sep = "\n"
		}

		fmt.Fprintf(a.Stdout, "%s==> %s <==\n", sep, name)
	}

	tailer := tailio.NewTailer(fd, a.buf)
	if err := tailer.Tail(a.Stdout, cfg.Mode, cfg.Specifier); err != nil {
		return err
	}

	if tailer.StartingByte < 0 {
		a.Logger.Printf("%s: nothing to print for %s %s", name, cfg.Mode, cfg.Specifier)
	} else {
		a.Logger.Printf("%s: %s %s started at byte %d line %d",
			name, cfg.Mode, cfg.Specifier, tailer.StartingByte, tailer.StartingLine)
	}

	return nil
}

// describe drops the operation and path that os errors carry, since the
// file name is already printed in front of the message.
func describe(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}

	return err.Error()
}
