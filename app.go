package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"reflens/pkg/engine"
	"reflens/pkg/export"
	"reflens/pkg/geom"
	"reflens/pkg/lens"
	"reflens/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to
// reflectors in the viewer.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices   []float32 `json:"vertices"`
	Normals    []float32 `json:"normals"`
	Indices    []uint32  `json:"indices"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	SliceCount int       `json:"sliceCount"`
	PointCount int       `json:"pointCount"`
	Source     geom.Vec3 `json:"source"`
	Observer   geom.Vec3 `json:"observer"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes []MeshData      `json:"meshes"`
	Errors []EvalErrorData `json:"errors"`
}

// ExportResult reports the files written by an export.
type ExportResult struct {
	Files  []string        `json:"files"`
	Errors []EvalErrorData `json:"errors"`
}

// NewApp creates a new App with a configuration engine.
func NewApp() *App {
	return &App{engine: engine.NewEngine()}
}

// startup is called by Wails on app startup. The context is saved so we
// can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes Lisp source, builds every declared reflector surface,
// and returns tessellated mesh data plus errors. This is the primary
// binding called by the frontend editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes: []MeshData{},
		Errors: []EvalErrorData{},
	}

	surfaces, errs := a.build(source)
	result.Errors = append(result.Errors, errs...)

	for i, s := range surfaces {
		tm := tessellate.Tessellate(s.mesh, s.cfg.Name)
		result.Meshes = append(result.Meshes, MeshData{
			Vertices:   tm.Vertices,
			Normals:    tm.Normals,
			Indices:    tm.Indices,
			Name:       tm.Name,
			Color:      colorPalette[i%len(colorPalette)],
			SliceCount: len(s.mesh.Slices),
			PointCount: s.mesh.PointCount(),
			Source:     s.cfg.Source,
			Observer:   geom.Vec3{},
		})
	}

	return result
}

// Export evaluates source and writes every declared reflector to dir in
// the given format: "csv" (one point file per slice), "dxf", or "stl".
func (a *App) Export(source, dir, format string) ExportResult {
	result := ExportResult{Files: []string{}, Errors: []EvalErrorData{}}

	surfaces, errs := a.build(source)
	result.Errors = append(result.Errors, errs...)
	if len(errs) > 0 {
		return result
	}

	for _, s := range surfaces {
		files, err := exportSurface(dir, format, s.cfg, s.mesh)
		if err != nil {
			log.Printf("Export error: %v", err)
			result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
			return result
		}
		result.Files = append(result.Files, files...)
	}
	return result
}

// builtSurface pairs a configuration with its generated mesh.
type builtSurface struct {
	cfg  lens.Config
	mesh lens.Mesh
}

// build runs the shared pipeline: Lisp source -> configs -> surfaces.
func (a *App) build(source string) ([]builtSurface, []EvalErrorData) {
	var errs []EvalErrorData

	configs, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		return nil, append(errs, EvalErrorData{Message: err.Error()})
	}
	for _, e := range evalErrs {
		errs = append(errs, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	var surfaces []builtSurface
	for _, cfg := range configs {
		field, err := lens.NewField(cfg)
		if err != nil {
			errs = append(errs, EvalErrorData{Message: fmt.Sprintf("%s: %v", cfg.Name, err)})
			continue
		}
		mesh, err := field.Build()
		if err != nil {
			errs = append(errs, EvalErrorData{Message: fmt.Sprintf("%s: %v", cfg.Name, err)})
			continue
		}
		surfaces = append(surfaces, builtSurface{cfg: cfg, mesh: mesh})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return surfaces, nil
}

// exportSurface writes one reflector in the requested format and
// returns the paths written.
func exportSurface(dir, format string, cfg lens.Config, mesh lens.Mesh) ([]string, error) {
	name := cfg.Name
	if name == "" {
		name = "reflector"
	}

	switch strings.ToLower(format) {
	case "csv":
		sliceDir := filepath.Join(dir, name)
		if err := export.WriteCSV(sliceDir, mesh); err != nil {
			return nil, err
		}
		return []string{sliceDir}, nil

	case "dxf":
		path := filepath.Join(dir, name+".dxf")
		if err := export.WriteDXF(path, mesh); err != nil {
			return nil, err
		}
		return []string{path}, nil

	case "stl":
		path := filepath.Join(dir, name+".stl")
		tm := tessellate.Tessellate(mesh, name)
		if err := export.WriteSTL(path, tm); err != nil {
			return nil, err
		}
		return []string{path}, nil

	default:
		return nil, fmt.Errorf("unknown export format %q (want csv, dxf, or stl)", format)
	}
}
