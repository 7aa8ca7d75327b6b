// Command svgattrs resolves the typed attributes of the paint servers and
// basic shapes in an SVG file and prints them as YAML or JSON.
//
//	svgattrs inspect drawing.svg
//	svgattrs inspect --format json --strict drawing.svg
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "svgattrs:", err)
		os.Exit(1)
	}
}
