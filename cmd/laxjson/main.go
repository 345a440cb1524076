// laxjson - permissive JSON decoder CLI
//
// Usage:
//
//	laxjson fmt [--sort] [file]     Parse permissive JSON, print normalized form
//	laxjson pretty [--sort] [file]  Parse permissive JSON, print indented form
//	laxjson check [file]            Parse and report the first error, if any
//	laxjson to-std [file]           Parse permissive JSON, print strict JSON
//	laxjson version                 Print version info
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Neumenon/laxjson/laxjson"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	var input io.Reader = os.Stdin

	sortKeys := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--sort":
			sortKeys = true
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			}
		}
	}

	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
	}

	switch cmd {
	case "fmt":
		cmdFmt(input, laxjson.EmitOptions{SortKeys: sortKeys})
	case "pretty":
		cmdFmt(input, laxjson.EmitOptions{Pretty: true, Indent: "  ", SortKeys: sortKeys})
	case "check":
		cmdCheck(input)
	case "to-std":
		cmdToStd(input)
	case "version", "-v", "--version":
		fmt.Printf("laxjson %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `laxjson - permissive JSON decoder

Usage:
  laxjson fmt [--sort] [file]     Parse permissive JSON, print normalized form
  laxjson pretty [--sort] [file]  Parse permissive JSON, print indented form
  laxjson check [file]            Parse and report the first error, if any
  laxjson to-std [file]           Parse permissive JSON, print strict JSON
  laxjson version                 Print version info

Options:
  --sort    Sort dict keys bytewise for deterministic output

If no file is given, reads from stdin.

Examples:
  echo '{"b": 1, "a": [1, 2,],}' | laxjson fmt --sort
  # Output: {"a": [1, 2], "b": 1}

  echo '[1, 2' | laxjson check
  # Output: laxjson: unexpected end of input (unterminated list) at offset 6
`)
}

// cmdFmt: permissive JSON -> normalized laxjson text
func cmdFmt(r io.Reader, opts laxjson.EmitOptions) {
	v := parseInput(r)
	fmt.Println(laxjson.EmitWithOptions(v, opts))
}

// cmdCheck: parse only, report the first error
func cmdCheck(r io.Reader) {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	if _, err := laxjson.Parse(string(data)); err != nil {
		fatal("%v", err)
	}
	fmt.Println("ok")
}

// cmdToStd: permissive JSON -> strict JSON via encoding/json
func cmdToStd(r io.Reader) {
	v := parseInput(r)
	data, err := laxjson.ToStdJSON(v)
	if err != nil {
		fatal("encode: %v", err)
	}
	fmt.Println(string(data))
}

func parseInput(r io.Reader) *laxjson.JValue {
	data, err := io.ReadAll(r)
	if err != nil {
		fatal("read input: %v", err)
	}
	v, err := laxjson.Parse(string(data))
	if err != nil {
		fatal("parse: %v", err)
	}
	return v
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
