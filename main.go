package main

import (
	"embed"
	"flag"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	script := flag.String("script", "", "evaluate a reflector script headless instead of opening the viewer")
	out := flag.String("out", "out", "output directory for headless export")
	format := flag.String("format", "csv", "headless export format: csv, dxf, or stl")
	flag.Parse()

	app := NewApp()

	if *script != "" {
		if err := runHeadless(app, *script, *out, *format); err != nil {
			log.Fatal(err)
		}
		return
	}

	err := wails.Run(&options.App{
		Title:  "Reflens",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Fatal(err)
	}
}

// runHeadless mirrors the original batch workflow: evaluate a script and
// write the surfaces straight to disk.
func runHeadless(app *App, script, out, format string) error {
	source, err := os.ReadFile(script)
	if err != nil {
		return err
	}

	result := app.Export(string(source), out, format)
	for _, e := range result.Errors {
		if e.Line > 0 {
			log.Printf("%s:%d: %s", script, e.Line, e.Message)
		} else {
			log.Printf("%s: %s", script, e.Message)
		}
	}
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
	for _, f := range result.Files {
		log.Printf("wrote %s", f)
	}
	return nil
}
