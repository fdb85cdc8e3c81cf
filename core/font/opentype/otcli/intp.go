package main

import (
	"errors"
	"image"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font"
	"github.com/npillmayer/typecase/core/font/fontregistry"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	registry *fontregistry.Registry
	desc     font.Descriptor
}

// NewIntp creates an interpreter working on a font descriptor for a
// typeface, resolved by registry.
func NewIntp(registry *fontregistry.Registry, typeface string, size float64) *Intp {
	return &Intp{
		registry: registry,
		desc:     font.NewWith(registry, typeface, size),
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			tracer().Debugf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of commands
const (
	QUIT int = iota
	HELP
	BOX
	DRAW
	SIZE
	FONT
	SEARCH
)

// Command is a parsed input line.
type Command struct {
	code int
	arg  string
}

func parseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	verb, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		verb, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Debugf("parse command = %q %q", verb, arg)
	cmd := Command{arg: arg}
	switch strings.ToLower(verb) {
	case "quit", "exit":
		cmd.code = QUIT
	case "help", "?":
		cmd.code = HELP
	case "box":
		cmd.code = BOX
	case "draw":
		cmd.code = DRAW
	case "size":
		cmd.code = SIZE
		if arg == "" {
			return cmd, errors.New("size needs a number")
		}
	case "font":
		cmd.code = FONT
	case "search":
		cmd.code = SEARCH
	default:
		return cmd, errors.New("unknown command: " + verb)
	}
	return cmd, nil
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.arg)
	case BOX:
		bbox, err := intp.desc.LayoutBox(cmd.arg)
		if err != nil {
			return false, err
		}
		w, h, err := intp.desc.BoxSize(cmd.arg)
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s: layout box of %q is %v, %d x %d pixels", intp.desc, cmd.arg, bbox, w, h)
	case DRAW:
		art, err := intp.render(cmd.arg)
		if err != nil {
			return false, err
		}
		pterm.Println(art)
	case SIZE:
		size, err := strconv.ParseFloat(cmd.arg, 64)
		if err != nil || size <= 0 {
			return false, core.Error(core.EINVALID, "not a valid font size: %s", cmd.arg)
		}
		intp.desc = intp.desc.Resize(size)
		pterm.Info.Printfln("font is now %s", intp.desc)
	case FONT:
		if cmd.arg == "" {
			pterm.Printfln("current font is %s", intp.desc)
			break
		}
		d := font.NewWith(intp.registry, cmd.arg, intp.desc.Size())
		if err := d.Err(); err != nil {
			return false, err
		}
		intp.desc = d
		pterm.Info.Printfln("font is now %s", intp.desc)
	case SEARCH:
		names := intp.registry.Search(cmd.arg)
		if len(names) == 0 {
			pterm.Printfln("no loaded font starts with %q", cmd.arg)
		}
		for _, n := range names {
			pterm.Printfln("  %s", n)
		}
	}
	return false, nil
}

// render draws text with the current font into an ASCII-art string.
func (intp *Intp) render(text string) (string, error) {
	sink := &asciiSink{}
	sinkErr, err := intp.desc.Draw(text, image.Point{}, sink)
	if err != nil {
		return "", err
	}
	if sinkErr != nil {
		return "", sinkErr
	}
	return sink.String(), nil
}

func help(topic string) {
	tracer().Debugf("help %v", topic)
	switch strings.ToLower(topic) {
	case "font", "fonts":
		pterm.Info.Println("font <name>")
		pterm.Println(`
	Switches to a typeface, keeping the current size. Names are resolved by
	the font registry: generic families (sans-serif, serif, monospace),
	packaged fonts (Go Sans, Go Mono, Latin Modern Roman), fonts installed
	on the system and, if configured, fontconfig and Google Fonts.
	Without a name, prints the current font.
	`)
	case "draw", "box":
		pterm.Info.Println("box <text> / draw <text>")
		pterm.Println(`
	box prints the layout box of text, relative to the pen position on the
	baseline, and its size in pixels.
	draw renders text as ASCII art, darker characters for higher coverage.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	box <text>        layout box of text
	draw <text>       render text
	size <n>          change font size (pixels)
	font [<name>]     change or print current font
	search <prefix>   list loaded fonts
	help [<topic>]    this message; topics are: font, draw
	quit              leave
	`)
	}
}
