package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/df07/go-wavefront-raytracer/pkg/renderer"
	"github.com/df07/go-wavefront-raytracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene description YAML file (default: built-in demo scene)")
	outPath := flag.String("out", "render.png", "Output PNG file")
	spp := flag.Int("spp", 0, "Override samples per pixel")
	seed := flag.Int("seed", 0, "Random seed")
	flag.Parse()

	var sc *scene.Scene
	var err error
	if *scenePath != "" {
		sc, err = scene.Load(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		sc = scene.Default()
	}
	if *spp > 0 {
		sc.SamplesPerPixel = *spp
	}

	fmt.Printf("Rendering %dx%d, %d samples/pixel, %d bounces...\n",
		sc.Width, sc.Height, sc.SamplesPerPixel, sc.MaxBounces)

	start := time.Now()
	img := renderer.NewRenderer(sc).Render(*seed)
	fmt.Printf("Render completed in %v\n", time.Since(start))

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", *outPath)
}
