package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func regionProperty() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"description": "Optional region to sample (x2, y2 exclusive). If omitted, samples the entire image.",
	}
}

func colorsProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"minimum":     1,
		"description": "Requested palette size. Rounded down to a power of two: 5 yields 4 colors, 16 yields 16.",
	}
}

func sampleTargetProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Approximate number of pixels sampled to build the palette. Larger images are shrunk first. 0 samples every pixel. Defaults to the server setting (100000).",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and whether it has transparency.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Palette Operations
		{
			Name:        "image_palette",
			Description: "Build a color palette for an image using median-cut quantization. Returns each palette color as hex, RGB and HSL in palette order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":          pathProperty(),
					"colors":        colorsProperty(),
					"sample_target": sampleTargetProperty(),
					"region":        regionProperty(),
				},
				"required": []string{"path", "colors"},
			},
		},
		{
			Name:        "image_quantize",
			Description: "Reduce an image to a median-cut palette: every pixel is replaced by its nearest palette color. Returns the palette, an error report and the remapped image (written to output_path, or base64 PNG if omitted).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":          pathProperty(),
					"colors":        colorsProperty(),
					"sample_target": sampleTargetProperty(),
					"region":        regionProperty(),
					"matcher": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"linear", "kdtree"},
						"description": "Nearest-color search. Both give identical results; kdtree is faster for large palettes. Defaults to the server setting.",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the remapped image. Format follows the extension (png, jpg, gif, tif, bmp).",
					},
				},
				"required": []string{"path", "colors"},
			},
		},
		{
			Name:        "image_match_color",
			Description: "Find the palette color nearest to a given color by Euclidean RGB distance. Ties resolve to the earliest palette entry.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color to match as #RRGGBB",
					},
					"palette": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Palette colors as #RRGGBB, in order",
					},
				},
				"required": []string{"color", "palette"},
			},
		},
		{
			Name:        "image_palette_swatch",
			Description: "Build a median-cut palette for an image and render it as a grid of color cells. Returns a base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":          pathProperty(),
					"colors":        colorsProperty(),
					"sample_target": sampleTargetProperty(),
					"region":        regionProperty(),
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Cell edge length in pixels (default 32). The swatch may not exceed 4096 pixels per side.",
						"default":     32,
						"minimum":     1,
						"maximum":     4096,
					},
					"columns": map[string]interface{}{
						"type":        "integer",
						"description": "Cells per row (default 16)",
						"default":     16,
						"minimum":     1,
						"maximum":     4096,
					},
				},
				"required": []string{"path", "colors"},
			},
		},

		// Color Operations
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
