// maskcheck reconstructs the neighbor-presence bitmask layout of blob
// autotile sheets and prints a diagnostic report per sheet. On a perfect
// reconstruction the report ends with the [mask, col, row] lookup table for
// direct reuse by a rendering system.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wbrown/tilemask"
	"github.com/wbrown/tilemask/imageutil"
)

const defaultSheet = "assets/tilesets/me-autotile-01.png"

func main() {
	crossCheck := flag.Bool("crosscheck", false,
		"Also report a randomized 2-means split of each diff pool next to the gap threshold")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{defaultSheet}
	}

	opts := tilemask.DefaultOptions()
	opts.CrossCheck = *crossCheck

	for _, path := range paths {
		fmt.Printf("\n%s\n", strings.Repeat("=", 60))
		fmt.Printf("Sheet: %s\n", path)

		img, err := imageutil.Load(path)
		if err != nil {
			fmt.Printf("Error reading sheet: %v\n", err)
			continue
		}
		analysis, err := tilemask.Analyze(img, opts)
		if err != nil {
			fmt.Printf("Error analyzing sheet: %v\n", err)
			continue
		}
		tilemask.WriteReport(os.Stdout, analysis)
	}
}
