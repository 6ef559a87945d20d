package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/median-cut-mcp/internal/imaging"
	"github.com/ironsheep/median-cut-mcp/internal/quantize"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_palette").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies server defaults for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/quantize function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Palette Operations
	case "image_palette":
		return s.handleImagePalette(args)
	case "image_quantize":
		return s.handleImageQuantize(args)
	case "image_match_color":
		return s.handleImageMatchColor(args)
	case "image_palette_swatch":
		return s.handleImagePaletteSwatch(args)

	// Color Operations
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Palette Operation Handlers ===

// paletteArgs are shared by every tool that builds a palette from an image.
type paletteArgs struct {
	Path         string          `json:"path"`
	Colors       int             `json:"colors"`
	SampleTarget *int            `json:"sample_target"`
	Region       *imaging.Region `json:"region"`
}

// paletteOptions merges the call's arguments over the server defaults.
func (s *Server) paletteOptions(a paletteArgs) imaging.PaletteOptions {
	target := s.opts.SampleTarget
	if a.SampleTarget != nil {
		target = *a.SampleTarget
	}
	return imaging.PaletteOptions{
		Colors:       a.Colors,
		SampleTarget: target,
		Region:       a.Region,
		Debug:        s.opts.Debug,
	}
}

func (s *Server) handleImagePalette(args json.RawMessage) (interface{}, error) {
	var a paletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.BuildPalette(img, s.paletteOptions(a))
}

type imageQuantizeArgs struct {
	paletteArgs
	Matcher    string `json:"matcher"`
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageQuantize(args json.RawMessage) (interface{}, error) {
	var a imageQuantizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	kind := s.opts.Matcher
	if a.Matcher != "" {
		k, err := quantize.ParseMatcherKind(a.Matcher)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	result, err := imaging.QuantizeImage(img, imaging.QuantizeOptions{
		PaletteOptions: s.paletteOptions(a.paletteArgs),
		Matcher:        kind,
		OutputPath:     a.OutputPath,
	})
	if err != nil {
		return nil, err
	}
	if result.OutputPath != "" {
		// The file on disk changed; drop any decoded copy of the old one.
		s.cache.Evict(result.OutputPath)
	}
	return result, nil
}

type imageMatchColorArgs struct {
	Color   string   `json:"color"`
	Palette []string `json:"palette"`
}

// MatchColorResult reports the palette entry nearest to a color.
type MatchColorResult struct {
	Color    imaging.ColorResult  `json:"color"`
	Match    imaging.PaletteEntry `json:"match"`
	Distance float64              `json:"distance"`
}

func (s *Server) handleImageMatchColor(args json.RawMessage) (interface{}, error) {
	var a imageMatchColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	c, err := imaging.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	palette, err := imaging.ParsePalette(a.Palette)
	if err != nil {
		return nil, err
	}

	idx, err := palette.MatchIndex(c)
	if err != nil {
		return nil, err
	}
	return &MatchColorResult{
		Color:    imaging.FormatColor(c),
		Match:    imaging.PaletteEntry{Index: idx, ColorResult: imaging.FormatColor(palette[idx])},
		Distance: c.Distance(palette[idx]),
	}, nil
}

type imagePaletteSwatchArgs struct {
	paletteArgs
	CellSize int `json:"cell_size"`
	Columns  int `json:"columns"`
}

// PaletteSwatchResult is a rendered swatch with the palette it shows.
type PaletteSwatchResult struct {
	Palette *imaging.PaletteResult `json:"palette"`
	*imaging.SwatchResult
}

func (s *Server) handleImagePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a imagePaletteSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = imaging.DefaultSwatchCellSize
	}
	if a.Columns == 0 {
		a.Columns = imaging.DefaultSwatchColumns
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	pal, err := imaging.BuildPalette(img, s.paletteOptions(a.paletteArgs))
	if err != nil {
		return nil, err
	}
	swatch, err := imaging.Swatch(pal.Palette, a.CellSize, a.Columns)
	if err != nil {
		return nil, err
	}
	return &PaletteSwatchResult{Palette: pal, SwatchResult: swatch}, nil
}

// === Color Operation Handlers ===

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// SampleColorResult is the color found at a pixel.
type SampleColorResult struct {
	X int `json:"x"`
	Y int `json:"y"`
	imaging.ColorResult
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	c, err := imaging.SampleColor(img, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &SampleColorResult{X: a.X, Y: a.Y, ColorResult: imaging.FormatColor(c)}, nil
}
