package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

const scenesDir = "scenes"

// options holds the parsed command line
type options struct {
	sceneType  string
	meshPath   string
	background string
	outPath    string
	cullCenter bool
	help       bool
	listJSON   bool

	width   int
	height  int
	fov     float64
	samples int
	set     map[string]bool // Flags given explicitly on the command line
}

func parseFlags(args []string) (*options, *flag.FlagSet, error) {
	defaults := renderer.DefaultConfig()
	opts := &options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("raycaster", flag.ContinueOnError)
	fs.StringVar(&opts.sceneType, "scene", "sphere", "Built-in scene name or path to a JSON scene file")
	fs.StringVar(&opts.meshPath, "mesh", "", "Render a Wavefront OBJ mesh instead of a scene")
	fs.StringVar(&opts.background, "background", "", "PNG or JPEG image shown where rays miss")
	fs.StringVar(&opts.outPath, "out", "img.png", "Output image (.png or .gif)")
	fs.BoolVar(&opts.cullCenter, "cull-center", false, "Drop mesh triangles facing away from the center ray")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	fs.BoolVar(&opts.listJSON, "list-json", false, "Print the available scenes as JSON and exit")
	fs.IntVar(&opts.width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.height, "height", defaults.Height, "Image height in pixels")
	fs.Float64Var(&opts.fov, "fov", defaults.FOVDegrees, "Horizontal field of view in degrees")
	fs.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })
	return opts, fs, nil
}

// apply overrides config with the render flags given explicitly
func (o *options) apply(config renderer.Config) renderer.Config {
	if o.set["width"] {
		config.Width = o.width
	}
	if o.set["height"] {
		config.Height = o.height
	}
	if o.set["fov"] {
		config.FOVDegrees = o.fov
	}
	if o.set["samples"] {
		config.SamplesPerPixel = o.samples
	}
	return config
}

// createScene builds the scene selected on the command line. Flags override
// render settings from scene files.
func createScene(opts *options, logger core.Logger) (*scene.Scene, error) {
	base := renderer.DefaultConfig()

	if opts.meshPath != "" {
		data, err := loaders.LoadOBJ(opts.meshPath, logger)
		if err != nil {
			return nil, err
		}
		meshOptions := scene.DefaultMeshOptions()
		meshOptions.CullAgainstCenterRay = opts.cullCenter
		return scene.NewMeshScene(data, meshOptions, opts.apply(base), logger), nil
	}

	if strings.HasSuffix(opts.sceneType, ".json") {
		cfg, err := scene.ReadSceneFile(opts.sceneType)
		if err != nil {
			return nil, err
		}
		config, err := cfg.ApplyTo(base)
		if err != nil {
			return nil, fmt.Errorf("scene file %s: %w", opts.sceneType, err)
		}
		return cfg.Build(opts.apply(config), logger)
	}

	return scene.NewBuiltinScene(opts.sceneType, opts.apply(base))
}

func printHelp(fs *flag.FlagSet) {
	fmt.Println("Ray Caster")
	fmt.Println("Usage: raycaster [options]")
	fmt.Println()
	fmt.Println("Options:")
	fs.SetOutput(os.Stdout)
	fs.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")

	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		fmt.Printf("  (failed to list scene files: %v)\n", err)
		scenes = scene.BuiltinScenes()
	}
	for _, info := range scenes {
		id := info.ID
		if info.Type == "file" {
			id = info.FilePath
		}
		fmt.Printf("  %-24s %s\n", id, info.Description)
	}
}

// writeSceneList encodes every built-in and file scene as a JSON array
func writeSceneList(w io.Writer, dir string) error {
	scenes, err := scene.ListAllScenes(dir)
	if err != nil {
		return fmt.Errorf("failed to list scenes: %w", err)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(scenes)
}

// run renders the selected scene and writes the image. Nothing is written
// if any step fails.
func run(args []string, logger core.Logger) error {
	opts, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	if opts.help {
		printHelp(fs)
		return nil
	}
	if opts.listJSON {
		return writeSceneList(os.Stdout, scenesDir)
	}

	s, err := createScene(opts, logger)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	if opts.background != "" {
		image, err := loaders.LoadImage(opts.background)
		if err != nil {
			return fmt.Errorf("failed to load background: %w", err)
		}
		s.Background = scene.NewImageBackground(image, s.Config.Gamma)
	}

	raytracer, err := renderer.NewRaytracer(s, s.Config)
	if err != nil {
		return err
	}

	logger.Printf("Rendering %dx%d with %d primitives...\n", s.Config.Width, s.Config.Height, s.GetPrimitiveCount())
	img, stats := raytracer.RenderPass()

	logger.Printf("Render completed in %v\n", stats.Duration)
	logger.Printf("Hit ratio: %.1f%% of %d samples, average luminance %.3f\n",
		stats.HitRatio()*100, stats.TotalSamples, renderer.CalculateAverageLuminance(img))

	if err := loaders.SaveImage(opts.outPath, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", opts.outPath)
	return nil
}

func main() {
	if err := run(os.Args[1:], renderer.NewDefaultLogger()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
