package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geojson"

	"github.com/jessevdk/go-flags"
	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
)

type Options struct {
	Input  string `short:"i" long:"in"     description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	Indent bool   `short:"p" long:"pretty" description:"Indent output instead of minifying"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	var inputData []byte
	var err error

	if opts.Input != "" {
		inputData, err = os.ReadFile(opts.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData, err = io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	}

	// Parsing validates the document before it is re-emitted.
	doc, err := geojson.Unmarshal(inputData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid GeoJSON: %v\n", err)
		os.Exit(1)
	}

	rendered, err := geojson.Marshal(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering document: %v\n", err)
		os.Exit(1)
	}

	var outputData []byte
	if opts.Indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, rendered, "", "  "); err != nil {
			fmt.Fprintf(os.Stderr, "Error indenting document: %v\n", err)
			os.Exit(1)
		}
		outputData = buf.Bytes()
	} else {
		m := minify.New()
		m.AddFunc("application/json", mjson.Minify)

		outputData, err = m.Bytes("application/json", rendered)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error minifying document: %v\n", err)
			os.Exit(1)
		}
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d bytes to %s (input %d bytes)\n", len(outputData), opts.Output, len(inputData))
	} else {
		fmt.Println(string(outputData))
	}
}
