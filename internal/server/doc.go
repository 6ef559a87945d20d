// Package server implements the MCP (Model Context Protocol) server for
// median-cut color quantization.
//
// This package provides a JSON-RPC 2.0 server that exposes palette
// extraction and image remapping through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Palette Operations:
//   - image_palette: Median-cut palette for an image or region
//   - image_quantize: Remap an image onto its palette
//   - image_match_color: Nearest palette entry for a color
//   - image_palette_swatch: Render a palette as a PNG grid
//
// Color Operations:
//   - image_sample_color: Get color at pixel
//
// # Defaults
//
// Options carries the server-wide sample target and matcher. The
// sample_target and matcher tool arguments override them for one call; an
// explicit sample_target of 0 samples every pixel.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.DefaultOptions())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
