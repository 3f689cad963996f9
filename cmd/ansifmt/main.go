// Command ansifmt formats its arguments (or stdin) with ANSI escape
// sequences per a directive string and optional layout spec.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ansitext/ansitext"
	"github.com/ansitext/ansitext/ansi"
)

var (
	directives = flag.String("f", "", "formatting directives, e.g. \"bold;red\" or \"fg_rgb(255,128,0)\"")
	spec       = flag.String("spec", "", "layout spec [[fill][+|-]align][width], e.g. \"^40\" or \".>12\"")
	quantize   = flag.Bool("256", false, "quantize 24-bit colors to the 8-bit palette")
	force      = flag.Bool("force", false, "emit escape sequences even when stdout is not a terminal")
)

func main() {
	flag.Parse()
	if err := run(os.Stdout, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(out *os.File, args []string) (err error) {
	input := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = strings.TrimSuffix(string(b), "\n")
	}

	var tokens []any
	if *directives != "" {
		tokens = append(tokens, *directives)
	}
	t, err := ansitext.New(input, tokens...)
	if err != nil {
		return err
	}
	if *quantize {
		t.MapSettings(ansi.Quantize)
	}

	bufw := bufio.NewWriter(out)
	defer func() {
		if ferr := bufw.Flush(); err == nil {
			err = ferr
		}
	}()

	if !*force && !ansitext.Enable(out) {
		t.ClearAll()
	}
	s, err := t.Format(*spec)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(bufw, s)
	return err
}
