// SPDX-License-Identifier: Unlicense OR MIT

// Command ouishot renders the demo user interface to PNG files, one
// file per scripted input scenario.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

var (
	outDir    = flag.String("o", ".", "output directory.")
	width     = flag.Int("width", 280, "window width in pixels.")
	height    = flag.Int("height", 260, "window height in pixels.")
	scenarios = flag.String("scenarios", "", "comma separated list of scenarios to render (default all).")
	verbose   = flag.Bool("v", false, "print the demo messages of each scenario.")
)

const mainUsage = `Ouishot renders the demo user interface after scripted input.

Usage:

	ouishot [flags]

Each scenario is written to <name>.png in the output directory.
Scenarios: %s

Flags:

`

func main() {
	log.SetFlags(0)
	log.SetPrefix("ouishot: ")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), mainUsage, strings.Join(scenarioNames(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		log.Fatal(err)
	}
}

func mainErr() error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *width, *height)
	}
	selected, err := selectScenarios(*scenarios)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}
	size := image.Pt(*width, *height)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, s := range selected {
		s := s
		g.Go(func() error {
			img, msgs, err := s.run(size)
			if err != nil {
				return err
			}
			if *verbose {
				for _, m := range msgs {
					log.Printf("%s: %s", s.name, m)
				}
			}
			return writePNG(filepath.Join(*outDir, s.name+".png"), img)
		})
	}
	return g.Wait()
}

// selectScenarios returns the scenarios named in the comma separated
// list, or all scenarios for an empty list.
func selectScenarios(list string) ([]scenario, error) {
	if list == "" {
		return allScenarios, nil
	}
	var selected []scenario
	for _, name := range strings.Split(list, ",") {
		s, ok := lookupScenario(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
