package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geojson"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input  string `short:"i" long:"in"     description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out"    description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Quiet  bool   `short:"q" long:"quiet"  description:"Suppress the re-rendered document, report only"`
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

	// Read Input
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

	doc, err := geojson.Unmarshal(inputData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid GeoJSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Valid GeoJSON: %s%s\n", doc.Kind(), summary(doc))

	if opts.Quiet {
		return
	}

	// Re-render the typed document
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(geojson.ToValue(doc))
	} else {
		outputData, err = json.MarshalIndent(doc.ToObject(), "", "  ")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling document: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(string(outputData))
	}
}

// summary adds per-kind detail to the report line.
func summary(doc geojson.GeoJSON) string {
	switch d := doc.(type) {
	case *geojson.Geometry:
		return fmt.Sprintf(" (%s)", d.Type)
	case *geojson.FeatureCollection:
		return fmt.Sprintf(" (%d features)", len(d.Features))
	}
	return ""
}
