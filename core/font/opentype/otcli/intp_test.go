package main

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/font/fontregistry"
	"github.com/npillmayer/typecase/core/locate/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	cmd, err := parseCommand("draw  Hello World ")
	require.NoError(t, err)
	assert.Equal(t, DRAW, cmd.code)
	assert.Equal(t, "Hello World", cmd.arg)
	cmd, err = parseCommand("QUIT")
	require.NoError(t, err)
	assert.Equal(t, QUIT, cmd.code)
	_, err = parseCommand("size")
	assert.Error(t, err)
	_, err = parseCommand("frobnicate 3")
	assert.Error(t, err)
}

func TestASCIISink(t *testing.T) {
	s := &asciiSink{}
	assert.Equal(t, "", s.String())
	s.Emit(2, 5, 1.0)
	s.Emit(3, 6, 0.5)
	assert.Equal(t, "@ \n +\n", s.String())
}

func newTestIntp(t *testing.T) *Intp {
	registry := fontregistry.NewRegistry(resources.PackagedFonts())
	intp := NewIntp(registry, "sans-serif", 12)
	require.NoError(t, intp.desc.Err())
	return intp
}

func TestIntpSizeAndFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	intp := newTestIntp(t)
	quit, err := intp.execute(Command{code: SIZE, arg: "24"})
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 24.0, intp.desc.Size())
	assert.Equal(t, "sans-serif", intp.desc.Name())
	//
	_, err = intp.execute(Command{code: SIZE, arg: "-1"})
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = intp.execute(Command{code: FONT, arg: "serif"})
	require.NoError(t, err)
	assert.Equal(t, "serif", intp.desc.Name())
	assert.Equal(t, 24.0, intp.desc.Size())
	_, err = intp.execute(Command{code: FONT, arg: "No Such Font"})
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, "serif", intp.desc.Name(), "failed switch should keep current font")
	assert.Equal(t, []string{"serif"}, intp.registry.Search("ser"))
	quit, err = intp.execute(Command{code: QUIT})
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestIntpRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.fonts")
	defer teardown()
	//
	intp := newTestIntp(t)
	intp.desc = intp.desc.Resize(24)
	art, err := intp.render("Hi")
	require.NoError(t, err)
	assert.True(t, strings.ContainsRune(art, '@'), "expected full coverage pixels:\n%s", art)
	_, h, err := intp.desc.BoxSize("Hi")
	require.NoError(t, err)
	assert.InDelta(t, int(h), strings.Count(art, "\n"), 1)
	_, err = intp.execute(Command{code: BOX, arg: "Hi"})
	assert.NoError(t, err)
	art, err = intp.render(" ")
	require.NoError(t, err)
	assert.Equal(t, "", art)
}
