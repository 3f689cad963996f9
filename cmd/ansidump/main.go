// Command ansidump decodes ANSI formatted text from stdin, printing each
// styled run and control sequence on its own line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ansitext/ansitext/ansi"
)

var (
	stripMode = flag.Bool("strip", false, "print plain text only")
	checkMode = flag.Bool("check", false, "exit non-zero on truncated escape sequences")
)

func main() {
	flag.Parse()
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(in io.Reader, out io.Writer) (err error) {
	b, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	bufw := bufio.NewWriter(out)
	defer func() {
		if ferr := bufw.Flush(); err == nil {
			err = ferr
		}
	}()

	d := ansi.DecodeText(string(b))
	if *stripMode {
		_, err = bufw.WriteString(d.Plain)
		return err
	}
	ci := 0
	for _, r := range d.Runs {
		for ; ci < len(d.Controls) && d.Controls[ci].Pos <= r.Pos; ci++ {
			printControl(bufw, d.Controls[ci])
		}
		if len(r.Active) == 0 {
			fmt.Fprintf(bufw, "%d: %q\n", r.Pos, r.Text)
			continue
		}
		fmt.Fprintf(bufw, "%d: %q <- %v\n", r.Pos, r.Text, r.Active)
	}
	for ; ci < len(d.Controls); ci++ {
		printControl(bufw, d.Controls[ci])
	}
	if !d.Complete {
		fmt.Fprintf(bufw, "truncated escape sequence at end of input\n")
		if *checkMode {
			err = fmt.Errorf("input incomplete")
		}
	}
	return err
}

func printControl(w io.Writer, c ansi.Control) {
	fmt.Fprintf(w, "%d: CSI %q %q\n", c.Pos, c.Params, c.Final)
}
