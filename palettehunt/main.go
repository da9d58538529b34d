// Command palettehunt bulk-downloads community palettes from the ColorHunt
// feed and stores them as 1x4 swatch images the preview can browse.
//
// Usage: palettehunt [flags] [tags]
//
// tags filters the feed, for example "pastel" or "pastel-blue". Without tags
// the unfiltered feed is fetched.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"wallrus/palette"
)

func main() {
	limit := flag.Int("limit", 120, "maximum number of palettes to save")
	sortBy := flag.String("sort", "new", "feed ordering: new, popular or random")
	out := flag.String("o", "", "output directory (default: a category folder under the user palette dir)")
	delay := flag.Duration("delay", time.Second, "pause between feed pages")
	timeframe := flag.String("timeframe", "", "days window for popular sorting, e.g. 30")
	flag.Parse()

	tags := flag.Arg(0)

	dir := *out
	if dir == "" {
		userDir, err := palette.UserDir()
		if err != nil {
			log.Fatalf("Failed to locate the palette directory: %v", err)
		}
		category := tags
		if category == "" {
			category = "colorhunt"
		}
		dir = filepath.Join(userDir, category)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Failed to create output directory %s: %v", dir, err)
	}

	ctx := context.Background()
	saved := 0
	emptyPages := 0
	for step := 0; saved < *limit && emptyPages < 3; step++ {
		pals, err := palette.Hunt(ctx, palette.HuntQuery{
			Sort:      *sortBy,
			Tags:      tags,
			Timeframe: *timeframe,
			Step:      step,
		})
		if err != nil {
			log.Fatalf("Feed fetch failed: %v", err)
		}

		// The feed pages out by going empty; three in a row means done.
		if len(pals) == 0 {
			emptyPages++
			time.Sleep(*delay)
			continue
		}
		emptyPages = 0

		for _, p := range pals {
			if saved >= *limit {
				break
			}
			path := filepath.Join(dir, p.Name+".png")
			if _, err := os.Stat(path); err == nil {
				continue
			}
			if err := palette.SaveSwatch(p, path); err != nil {
				log.Printf("Warning: skipping %s: %v", p.Name, err)
				continue
			}
			saved++
		}
		log.Printf("Page %d fetched, %d palettes saved", step, saved)
		time.Sleep(*delay)
	}

	log.Printf("Saved %d palettes to %s", saved, dir)
}
