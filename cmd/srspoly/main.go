// Command srspoly is a tiny REPL-style driver over the polynomial
// core: it reads one polynomial expression per line, either from
// stdin or from the command line, and prints the reduced Gröbner
// basis of the system they generate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fumin/srspoly/parse"
)

var (
	expr = flag.String("e", "", "execute a single semicolon-separated list of expressions instead of reading stdin")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	var exprs []string
	var err error
	switch {
	case *expr != "":
		exprs = splitExprs(*expr)
	case flag.NArg() > 0:
		exprs = flag.Args()
	default:
		exprs, err = readLines(os.Stdin)
		if err != nil {
			log.Fatalf("read stdin: %+v", err)
		}
	}
	if len(exprs) == 0 {
		log.Fatal("no polynomial expressions given")
	}

	sys, err := parse.System(exprs)
	if err != nil {
		log.Fatalf("parse system: %+v", err)
	}

	basis := sys.Buchberger()
	fmt.Println(basis)
}

func splitExprs(s string) []string {
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: srspoly [-e expr1;expr2;...] [expr...]\n")
	fmt.Fprintf(os.Stderr, "reads polynomial generators (one per line, from stdin if none given)\n")
	fmt.Fprintf(os.Stderr, "and prints the reduced Groebner basis of the system they generate.\n")
	flag.PrintDefaults()
}
