/*
Command otcli is an interactive shell for exploring fonts: it resolves
typefaces, measures text and renders it as ASCII art.

    otcli -font "Latin Modern Roman" -size 16

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/typecase/core/font/fontregistry"
	"github.com/npillmayer/typecase/core/locate/resources"
	"github.com/pterm/pterm"
)

// tracer traces with key 'typecase.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typecase.fonts")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "sans-serif", "Font to load")
	fontsize := flag.Float64("size", 12, "Font size in pixels")
	fcList := flag.String("fontconfig", "", "Absolute path of fontconfig's fc-list binary")
	dpi := flag.String("dpi", "", "Resolution to scale fonts for")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.typecase.fonts":     *tlevel,
		"trace.typecase.font":      *tlevel,
		"trace.typecase.resources": *tlevel,
		"app-key":                  "typecase",
		"fontconfig":               *fcList,
		"font-dpi":                 *dpi,
		"google-api-key":           os.Getenv("GOOGLE_API_KEY"),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the typecase font CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)

	// set up font resolution
	registry := fontregistry.GlobalRegistry()
	registry.Configure(conf)
	if *fcList != "" {
		registry.AddLocator(resources.FontConfig(conf))
	}
	if conf.GetString("google-api-key") != "" {
		registry.AddLocator(resources.GoogleFonts(conf))
	}
	//
	// set up REPL
	repl, err := readline.New("font > ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp := NewIntp(registry, *fontname, *fontsize)
	intp.repl = repl
	if err := intp.desc.Err(); err != nil { // font name provided by flag
		pterm.Error.Println(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
