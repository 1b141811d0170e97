package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/datagen/internal/manifest"
	"pkg.jsn.cam/datagen/pkg/dataset"
)

/*generates synthetic integer corpora: {distribution}_{size}.txt, one decimal value per line*/

var (
	outputDir    = flag.String("output", ".", "Output directory for dataset files")
	sizesFlag    = flag.String("sizes", "", "Comma-separated dataset sizes (default: 10^4 through 10^8)")
	distsFlag    = flag.String("dist", "", "Comma-separated distributions (default: all)")
	seed         = flag.Uint64("seed", 0, "Base random seed (0 = derive from clock)")
	workers      = flag.Int("workers", 1, "Concurrent file writers")
	manifestPath = flag.String("manifest", "", "Record the run in this manifest database")
	quiet        = flag.Bool("quiet", false, "Suppress progress bars")
	list         = flag.Bool("list", false, "List available distributions and exit")
)

// barWriter advances a progress bar by one value per emitted line. Each
// sampler writes a full line in a single Write call.
type barWriter struct {
	bar *progressbar.ProgressBar
}

func (w *barWriter) Write(p []byte) (int, error) {
	_ = w.bar.Add(1)
	return len(p), nil
}

func parseSizes(s string) ([]int64, error) {
	if s == "" {
		return nil, nil
	}
	var sizes []int64
	for _, part := range strings.Split(s, ",") {
		size, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		if size < 0 {
			return nil, fmt.Errorf("invalid size %q: must be non-negative", part)
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func parseDistributions(s string) []string {
	if s == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(s, ",") {
		names = append(names, strings.TrimSpace(part))
	}
	return names
}

func main() {
	flag.Parse()

	if *list {
		for _, name := range dataset.List() {
			sampler, err := dataset.Get(name)
			if err != nil {
				log.Fatalf("Failed to look up distribution %s: %v", name, err)
			}
			fmt.Printf("%-10s %s\n", name, sampler.Description())
		}
		return
	}

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		log.Fatalf("Failed to parse -sizes: %v", err)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}

	cfg := dataset.Config{
		OutDir:        *outputDir,
		Sizes:         sizes,
		Distributions: parseDistributions(*distsFlag),
		Seed:          baseSeed,
		Workers:       *workers,
	}
	// Interleaved bars are unreadable, so only show them when writing one
	// file at a time.
	if !*quiet && *workers <= 1 {
		cfg.Progress = func(distribution string, size int64) io.Writer {
			desc := dataset.FileName(distribution, size)
			return &barWriter{bar: progressbar.Default(size, desc)}
		}
	}

	started := time.Now()
	files, err := dataset.GenerateAll(cfg)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	var totalBytes, totalValues int64
	for _, f := range files {
		fmt.Printf("%-24s %12s values  %10s  %s\n",
			f.Name,
			humanize.Comma(f.Size),
			humanize.Bytes(uint64(f.Bytes)),
			f.Elapsed.Round(time.Millisecond))
		totalBytes += f.Bytes
		totalValues += f.Size
	}
	fmt.Printf("\nWrote %d files, %s values, %s in %s\n",
		len(files),
		humanize.Comma(totalValues),
		humanize.Bytes(uint64(totalBytes)),
		time.Since(started).Round(time.Millisecond))

	if *manifestPath != "" {
		store, err := manifest.Open(*manifestPath)
		if err != nil {
			log.Fatalf("Failed to open manifest: %v", err)
		}
		defer store.Close()

		run := manifest.NewRun(started, baseSeed, files)
		if err := store.Record(run); err != nil {
			log.Fatalf("Failed to record run: %v", err)
		}
		fmt.Printf("Recorded run %s in %s\n", run.ID, *manifestPath)
	}
}
