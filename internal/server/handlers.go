package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ironsheep/nineslice-mcp/internal/export"
	"github.com/ironsheep/nineslice-mcp/internal/imaging"
	"github.com/ironsheep/nineslice-mcp/internal/slicer"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "slice_set_margin").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image loading
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Margin editing
	case "slice_set_margins":
		return s.handleSetMargins(args)
	case "slice_set_margin":
		return s.handleSetMargin(args)
	case "slice_undo":
		return s.handleUndo(args)
	case "slice_redo":
		return s.handleRedo(args)

	// Geometry inspection
	case "slice_regions":
		return s.handleRegions(args)
	case "slice_describe":
		return s.handleDescribe(args)

	// Previews
	case "slice_preview_corners":
		return s.handlePreviewCorners(args)
	case "slice_guide_overlay":
		return s.handleGuideOverlay(args)

	// Exports
	case "export_corners":
		return s.handleExportCorners(args)
	case "export_slices":
		return s.handleExportSlices(args)
	case "export_atlas":
		return s.handleExportAtlas(args)
	case "export_coordinates":
		return s.handleExportCoordinates(args)

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

// getSession returns the editing session for a loaded image.
func (s *Server) getSession(path string) (*session, error) {
	if sess, ok := s.sessions[path]; ok {
		return sess, nil
	}
	return nil, fmt.Errorf("no slicing session for %s (call image_load first)", path)
}

// === Image Loading Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

type imageLoadResult struct {
	*imaging.Info
	// Margins are the initial margins applied on load: 25% of each
	// dimension, the same default the interactive editor starts from.
	Margins slicer.Margins `json:"margins"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	info, err := imaging.LoadInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}

	quarterW := int(math.Round(float64(info.Width) * 0.25))
	quarterH := int(math.Round(float64(info.Height) * 0.25))
	geo, err := slicer.New(info.Width, info.Height, slicer.Margins{
		Left: quarterW, Top: quarterH, Right: quarterW, Bottom: quarterH,
	})
	if err != nil {
		return nil, err
	}

	// Reloading an image resets its session.
	s.sessions[a.Path] = &session{geo: geo}

	return &imageLoadResult{Info: info, Margins: geo.Margins()}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Margin Editing Handlers ===

type setMarginsArgs struct {
	Path   string `json:"path"`
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Right  int    `json:"right"`
	Bottom int    `json:"bottom"`
}

type marginsResult struct {
	// Margins are the values actually applied after clamping.
	Margins slicer.Margins `json:"margins"`
}

func (s *Server) handleSetMargins(args json.RawMessage) (interface{}, error) {
	var a setMarginsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}

	prev := sess.geo.Margins()
	sess.geo.SetMargin(slicer.SideLeft, a.Left)
	sess.geo.SetMargin(slicer.SideRight, a.Right)
	sess.geo.SetMargin(slicer.SideTop, a.Top)
	sess.geo.SetMargin(slicer.SideBottom, a.Bottom)
	sess.record(prev)

	return &marginsResult{Margins: sess.geo.Margins()}, nil
}

type setMarginArgs struct {
	Path  string `json:"path"`
	Side  string `json:"side"`
	Value int    `json:"value"`
}

type setMarginResult struct {
	Side      string         `json:"side"`
	Requested int            `json:"requested"`
	Applied   int            `json:"applied"`
	Margins   slicer.Margins `json:"margins"`
}

func (s *Server) handleSetMargin(args json.RawMessage) (interface{}, error) {
	var a setMarginArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	side := slicer.Side(a.Side)
	switch side {
	case slicer.SideLeft, slicer.SideTop, slicer.SideRight, slicer.SideBottom:
	default:
		return nil, fmt.Errorf("unknown side: %q (want left, top, right or bottom)", a.Side)
	}

	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}

	prev := sess.geo.Margins()
	applied := sess.geo.SetMargin(side, a.Value)
	sess.record(prev)

	return &setMarginResult{
		Side:      a.Side,
		Requested: a.Value,
		Applied:   applied,
		Margins:   sess.geo.Margins(),
	}, nil
}

func (s *Server) handleUndo(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	if len(sess.undo) == 0 {
		return nil, fmt.Errorf("nothing to undo for %s", a.Path)
	}

	sess.redo = append(sess.redo, sess.geo.Margins())
	m := sess.undo[len(sess.undo)-1]
	sess.undo = sess.undo[:len(sess.undo)-1]
	if err := sess.restore(m); err != nil {
		return nil, err
	}

	return &marginsResult{Margins: sess.geo.Margins()}, nil
}

func (s *Server) handleRedo(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	if len(sess.redo) == 0 {
		return nil, fmt.Errorf("nothing to redo for %s", a.Path)
	}

	sess.undo = append(sess.undo, sess.geo.Margins())
	m := sess.redo[len(sess.redo)-1]
	sess.redo = sess.redo[:len(sess.redo)-1]
	if err := sess.restore(m); err != nil {
		return nil, err
	}

	return &marginsResult{Margins: sess.geo.Margins()}, nil
}

// restore replaces the session geometry with one built from a history
// snapshot. Snapshots were valid when recorded, so clamping is a no-op.
func (s *session) restore(m slicer.Margins) error {
	geo, err := slicer.New(s.geo.Width(), s.geo.Height(), m)
	if err != nil {
		return err
	}
	s.geo = geo
	return nil
}

// === Geometry Inspection Handlers ===

type regionInfo struct {
	Name       slicer.RegionName `json:"name"`
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Degenerate bool              `json:"degenerate"`
}

type regionsResult struct {
	Margins slicer.Margins `json:"margins"`
	Regions []regionInfo   `json:"regions"`
}

func (s *Server) handleRegions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}

	regions := sess.geo.Regions()
	infos := make([]regionInfo, len(regions))
	for i, r := range regions {
		infos[i] = regionInfo{
			Name:       r.Name,
			X:          r.X,
			Y:          r.Y,
			Width:      r.Width,
			Height:     r.Height,
			Degenerate: r.Degenerate(),
		}
	}
	return &regionsResult{Margins: sess.geo.Margins(), Regions: infos}, nil
}

func (s *Server) handleDescribe(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	return slicer.Describe(sess.geo), nil
}

// === Preview Handlers ===

type previewArgs struct {
	Path  string  `json:"path"`
	Scale float64 `json:"scale"`
}

type marginRatios struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

type previewResult struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Resolution string `json:"resolution"`

	// MarginRatios are the margins as fractions of the source dimensions.
	MarginRatios marginRatios `json:"margin_ratios"`

	// ImageBase64 is empty when the preview has zero area.
	ImageBase64 string `json:"image_base64,omitempty"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handlePreviewCorners(args json.RawMessage) (interface{}, error) {
	var a previewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	res := slicer.StitchCorners(src, sess.geo)
	m := sess.geo.Margins()
	w := float64(sess.geo.Width())
	h := float64(sess.geo.Height())

	result := &previewResult{
		Width:      res.Width,
		Height:     res.Height,
		Resolution: fmt.Sprintf("%d x %d px", res.Width, res.Height),
		MarginRatios: marginRatios{
			Left:   math.Round(float64(m.Left)/w*100) / 100,
			Top:    math.Round(float64(m.Top)/h*100) / 100,
			Right:  math.Round(float64(m.Right)/w*100) / 100,
			Bottom: math.Round(float64(m.Bottom)/h*100) / 100,
		},
		MimeType: "image/png",
	}

	if res.Width > 0 && res.Height > 0 {
		encoded, err := imaging.EncodeBase64PNG(imaging.Scale(res.Image, a.Scale))
		if err != nil {
			return nil, err
		}
		result.ImageBase64 = encoded
	}
	return result, nil
}

type guideOverlayArgs struct {
	Path       string `json:"path"`
	GuideColor string `json:"guide_color"`
	Thickness  int    `json:"thickness"`
}

func (s *Server) handleGuideOverlay(args json.RawMessage) (interface{}, error) {
	var a guideOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GuideColor == "" {
		a.GuideColor = "#ff3333"
	}
	if a.Thickness == 0 {
		a.Thickness = 2
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.GuideOverlay(src, sess.geo, a.GuideColor, a.Thickness)
}

// === Export Handlers ===

type exportArgs struct {
	Path string `json:"path"`
	Dest string `json:"dest"`
}

type exportResult struct {
	Written string `json:"written"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

func (s *Server) handleExportCorners(args json.RawMessage) (interface{}, error) {
	var a exportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	res, err := export.Stitched(src, sess.geo, a.Dest)
	if err != nil {
		return nil, err
	}
	return &exportResult{Written: a.Dest, Width: res.Width, Height: res.Height}, nil
}

type exportSlicesArgs struct {
	Path string `json:"path"`
	Dir  string `json:"dir"`
}

type exportSlicesResult struct {
	Written []string `json:"written"`
	Count   int      `json:"count"`
}

func (s *Server) handleExportSlices(args json.RawMessage) (interface{}, error) {
	var a exportSlicesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	paths, err := export.Slices(src, sess.geo, a.Dir)
	if err != nil {
		return nil, err
	}
	return &exportSlicesResult{Written: paths, Count: len(paths)}, nil
}

type exportAtlasArgs struct {
	Path    string `json:"path"`
	Dest    string `json:"dest"`
	Padding int    `json:"padding"`
}

func (s *Server) handleExportAtlas(args json.RawMessage) (interface{}, error) {
	var a exportAtlasArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}
	src, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	if err := export.Atlas(src, sess.geo, a.Padding, a.Dest); err != nil {
		return nil, err
	}
	return &exportResult{Written: a.Dest}, nil
}

func (s *Server) handleExportCoordinates(args json.RawMessage) (interface{}, error) {
	var a exportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.getSession(a.Path)
	if err != nil {
		return nil, err
	}

	if err := export.Coordinates(sess.geo, a.Dest); err != nil {
		return nil, err
	}
	return &exportResult{Written: a.Dest}, nil
}
