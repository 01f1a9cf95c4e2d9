// mksheet writes a synthetic ground-truth autotile sheet containing every
// canonical mask of the standard blob grammar. Useful as a calibration
// fixture: running maskcheck on the output must report a perfect match.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/wbrown/tilemask"
	"github.com/wbrown/tilemask/imageutil"
)

func main() {
	output := flag.String("output", "synthetic-sheet.png",
		"Path to write the generated sheet PNG")
	flag.Parse()

	sheet := tilemask.BuildSyntheticSheet(tilemask.Blob47())
	if err := imageutil.SavePNG(sheet.Image, *output); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	fmt.Printf("Wrote %d-mask sheet to %s\n", len(sheet.Truth), *output)
}
