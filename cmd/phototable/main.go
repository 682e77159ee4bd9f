// phototable turns a folder of images into a Word phototable and its index.
//
// Every readable image gets its own page, scaled to fit a 6 x 8.5 inch box and
// centered, with the page number below it (the first page shows none).
// The index document is a table of file names and their pages.
//
// Usage:
//
//	phototable [--source dir] [--output dir] [--pdf]
//	phototable run [--source dir] [--output dir] [--pdf]
//	phototable gui
//	phototable config
//
// Without a subcommand the tool asks for both folders, offering the
// configured values as defaults.
//
// Configuration:
//
// Settings are read from phototable.yaml (current directory or
// ~/.config/phototable), PHOTOTABLE_* environment variables and flags:
//
//	source: images
//	output: .
//	pdf: false
//	image:
//	  max_pixels: 4000
//	log:
//	  level: info
//
// Example:
//
//	PHOTOTABLE_IMAGE_MAX_PIXELS=3000 phototable run --source ./photos --output ./out
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	root := NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
