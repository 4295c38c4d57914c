package main

import (
	"os"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/logger"
	"github.com/woozymasta/geojson/internal/render"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input   string  `short:"i" long:"in"      description:"Input GeoJSON file path" required:"true"`
	Output  string  `short:"o" long:"out"     description:"Output WebP file path"   default:"preview.webp"`
	Width   int     `short:"W" long:"width"   description:"Image width in pixels"   default:"512"`
	Height  int     `short:"H" long:"height"  description:"Image height in pixels"  default:"512"`
	Quality float32 `short:"q" long:"quality" description:"WebP quality (0-100)"    default:"85"`
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

	opts.Logger.Setup()

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		log.Fatal().Err(err).Str("path", opts.Input).Msg("Failed to read input")
	}

	doc, err := geojson.Unmarshal(data)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid GeoJSON")
	}

	img, err := render.Render(doc, render.Options{
		Width:  opts.Width,
		Height: opts.Height,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render document")
	}

	if err := render.SaveWebP(opts.Output, img, opts.Quality); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write image")
	}

	log.Info().
		Str("kind", doc.Kind()).
		Str("path", opts.Output).
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("Preview rendered")
}
