package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/median-cut-mcp/internal/imaging"
	"github.com/ironsheep/median-cut-mcp/internal/quantize"
	"github.com/ironsheep/median-cut-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("median-cut-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp(os.Stdout)
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	opts, err := optionsFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	opts.Version = Version

	if len(os.Args) > 1 && os.Args[1] == "quantize" {
		if err := runQuantize(os.Args[2:], opts, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			printHelp(os.Stderr)
			os.Exit(1)
		}
		return
	}

	if opts.Debug {
		log.Printf("Median Cut MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Sample target %d, %s matcher", opts.SampleTarget, opts.Matcher)
	}

	srv := server.New(opts)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "median-cut-mcp - MCP server for median-cut color quantization")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  median-cut-mcp [options]")
	fmt.Fprintln(w, "  median-cut-mcp quantize <input> <colors> [output]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  quantize         Print the palette of <input>, one \"Color: (r, g, b)\" per line,")
	fmt.Fprintln(w, "                   and write the remapped image to [output] if given")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  MEDIANCUT_LOG_LEVEL=debug        Enable debug logging")
	fmt.Fprintln(w, "  MEDIANCUT_SAMPLE_TARGET=100000   Pixels sampled per image (0 = all)")
	fmt.Fprintln(w, "  MEDIANCUT_MATCHER=linear         Nearest-color search: linear or kdtree")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command the server communicates via MCP protocol over stdin/stdout.")
	fmt.Fprintln(w, "Configure it in your MCP client (e.g., Claude Desktop).")
}

// optionsFromEnv builds server options from MEDIANCUT_* variables.
func optionsFromEnv(getenv func(string) string) (server.Options, error) {
	opts := server.DefaultOptions()

	opts.Debug = strings.EqualFold(getenv("MEDIANCUT_LOG_LEVEL"), "debug")

	if v := strings.TrimSpace(getenv("MEDIANCUT_SAMPLE_TARGET")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("MEDIANCUT_SAMPLE_TARGET: %w", err)
		}
		opts.SampleTarget = n
	}

	kind, err := quantize.ParseMatcherKind(getenv("MEDIANCUT_MATCHER"))
	if err != nil {
		return opts, fmt.Errorf("MEDIANCUT_MATCHER: %w", err)
	}
	opts.Matcher = kind

	return opts, nil
}

// runQuantize prints the palette of an image file and optionally writes the
// remapped image. Stage timings are always logged.
func runQuantize(args []string, opts server.Options, out io.Writer) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("quantize takes <input> <colors> [output]")
	}

	colors, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid color count %q: %w", args[1], err)
	}

	img, err := imaging.NewImageCache().Load(args[0])
	if err != nil {
		return err
	}

	palOpts := imaging.PaletteOptions{
		Colors:       colors,
		SampleTarget: opts.SampleTarget,
		Debug:        true,
	}

	var palette quantize.Palette
	if len(args) == 3 {
		result, err := imaging.QuantizeImage(img, imaging.QuantizeOptions{
			PaletteOptions: palOpts,
			Matcher:        opts.Matcher,
			OutputPath:     args[2],
		})
		if err != nil {
			return err
		}
		palette = result.Palette.Palette
	} else {
		result, err := imaging.BuildPalette(img, palOpts)
		if err != nil {
			return err
		}
		palette = result.Palette
	}

	for _, c := range palette {
		fmt.Fprintf(out, "Color: %s\n", c)
	}
	return nil
}
