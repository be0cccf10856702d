// diff is a small CLI to manually run the word-diff implementations used for
// benchmarking.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/tools/txtar"
	"tokdiff.io/tokdiff/internal/benchmarks"
)

type config struct {
	lib   string
	x, y  string
	txtar string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "tokdiff", "library to use for diffing")
	flag.StringVar(&cfg.txtar, "txtar", "", "use a txtar file with x and y entries instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: diff -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: diff <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var lib *benchmarks.Impl
	for _, l := range benchmarks.Impls {
		if l.Name == cfg.lib {
			lib = &l
			break
		}
	}
	if lib == nil {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}

	var x, y string
	if cfg.txtar != "" {
		ar, err := txtar.ParseFile(cfg.txtar)
		if err != nil {
			return err
		}
		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				x = string(f.Data)
			case "y":
				y = string(f.Data)
			default:
				return fmt.Errorf("unknown file in archive: %v", f.Name)
			}
		}
	} else {
		xdata, err := os.ReadFile(cfg.x)
		if err != nil {
			return err
		}
		ydata, err := os.ReadFile(cfg.y)
		if err != nil {
			return err
		}
		x, y = string(xdata), string(ydata)
	}

	fmt.Println(lib.Diff(x, y))
	return nil
}
