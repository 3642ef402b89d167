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

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image loading
		{
			Name:        "image_load",
			Description: "Load an image file and start a nine-slice editing session with default margins at 25% of each dimension. Returns image metadata and the applied margins.",
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

		// Margin editing
		{
			Name:        "slice_set_margins",
			Description: "Set all four slice margins at once. Out-of-range values are clamped, never rejected; the response carries the margins actually applied.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"left": map[string]interface{}{
						"type":        "integer",
						"description": "Left margin in pixels",
					},
					"top": map[string]interface{}{
						"type":        "integer",
						"description": "Top margin in pixels",
					},
					"right": map[string]interface{}{
						"type":        "integer",
						"description": "Right margin in pixels",
					},
					"bottom": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom margin in pixels",
					},
				},
				"required": []string{"path", "left", "top", "right", "bottom"},
			},
		},
		{
			Name:        "slice_set_margin",
			Description: "Set a single slice margin. The value is clamped against the opposite margin and the image dimension; the response reports both the requested and the applied value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"side": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"left", "top", "right", "bottom"},
						"description": "Which margin to set",
					},
					"value": map[string]interface{}{
						"type":        "integer",
						"description": "Requested margin in pixels",
					},
				},
				"required": []string{"path", "side", "value"},
			},
		},
		{
			Name:        "slice_undo",
			Description: "Revert the most recent margin edit for this image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "slice_redo",
			Description: "Reapply the most recently undone margin edit for this image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Geometry inspection
		{
			Name:        "slice_regions",
			Description: "List the nine slice regions (name, rectangle, degenerate flag) derived from the current margins.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "slice_describe",
			Description: "Get the machine-readable coordinate description: image size, margins and the nine region rectangles.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Previews
		{
			Name:        "slice_preview_corners",
			Description: "Compose the four corner slices into a preview image (base64 PNG) and report its resolution and the margin ratios.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional display scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "slice_guide_overlay",
			Description: "Render the source image with the four margin guide lines drawn on top, as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"guide_color": map[string]interface{}{
						"type":        "string",
						"description": "Guide line color as hex, e.g. #ff3333. Default #ff3333",
					},
					"thickness": map[string]interface{}{
						"type":        "integer",
						"description": "Guide line thickness in pixels. Default 2",
						"default":     2,
					},
				},
				"required": []string{"path"},
			},
		},

		// Exports
		{
			Name:        "export_corners",
			Description: "Export the four corner slices stitched into a single PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Destination PNG path",
					},
				},
				"required": []string{"path", "dest"},
			},
		},
		{
			Name:        "export_slices",
			Description: "Export each of the nine slices as <region-name>.png inside a directory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dir": map[string]interface{}{
						"type":        "string",
						"description": "Destination directory (created if missing)",
					},
				},
				"required": []string{"path", "dir"},
			},
		},
		{
			Name:        "export_atlas",
			Description: "Export all nine slices packed into a single padded atlas PNG with transparent gutters.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Destination PNG path",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Pixel gap around and between cells. Default 0",
						"default":     0,
					},
				},
				"required": []string{"path", "dest"},
			},
		},
		{
			Name:        "export_coordinates",
			Description: "Export the slice coordinate description as a JSON document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"dest": map[string]interface{}{
						"type":        "string",
						"description": "Destination JSON path",
					},
				},
				"required": []string{"path", "dest"},
			},
		},
	}
}
