package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/JackKCWong/tailio"
	"github.com/pkg/profile"
)

type App struct {
	Stdout io.Writer
}

// Run prints every line of the file with its number and byte range, then the
// extent of the file.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: lscan [-prof cpu|mem] <file>")
	}

	infile, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer infile.Close()

	buf := make([]byte, 4*1024)
	scanner := tailio.NewScanner(infile, buf)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Line()
		fmt.Fprintf(a.Stdout, "%d:%d-%d\t\t%s\n", line.No, line.LineStart, line.LineEnding, bytes.TrimSuffix(line.Raw, []byte("\n")))
	}

	if err := scanner.Err(); err != io.EOF {
		return err
	}

	last := scanner.Line()
	ext := tailio.Extent{Lines: last.No, Bytes: last.LineEnding + 1}
	fmt.Fprintf(a.Stdout, "%d lines, %d bytes\n", ext.Total(tailio.LineMode), ext.Total(tailio.ByteMode))

	return nil
}

func main() {
	fProf := flag.String("prof", "", "cpu|mem")
	flag.Parse()

	switch *fProf {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown flag: %s\n", *fProf)
		fmt.Fprintln(os.Stderr, "usage: lscan [-prof cpu|mem] <file>")
		os.Exit(1)
	}

	app := App{Stdout: os.Stdout}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigKill := make(chan os.Signal, 1)
	signal.Notify(sigKill, os.Interrupt)

	go func() {
		<-sigKill
		cancel()
	}()

	if err := app.Run(ctx, flag.Args()); err != nil {
		log.Printf("exited with error: %q", err)
	}
}
