package resources

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
)

type sw struct {
	s xfont.Style
	w xfont.Weight
}

func TestGuess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	for k, v := range map[string]sw{
		"fonts/Clarendon-bold.ttf":               {xfont.StyleNormal, xfont.WeightBold},
		"Microsoft/Gill Sans MT Bold Italic.ttf": {xfont.StyleItalic, xfont.WeightBold},
		"Cambria Math.ttf":                       {xfont.StyleNormal, xfont.WeightNormal},
	} {
		style, weight := GuessStyleAndWeight(k)
		t.Logf("style = %d, weight = %d", style, weight)
		if style != v.s || weight != v.w {
			t.Errorf("expected different style or weight for %s", k)
		}
	}
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	if !Matches("fonts/Clarendon-bold.ttf",
		"clarendon", xfont.StyleNormal, xfont.WeightBold) {
		t.Errorf("expected match for Clarendon, haven't")
	}
	if !Matches("Microsoft/Gill Sans MT Bold Italic.ttf",
		"gill sans", xfont.StyleItalic, xfont.WeightBold) {
		t.Errorf("expected match for Gill, haven't")
	}
	if !Matches("Cambria Math.ttf",
		"cambria", xfont.StyleNormal, xfont.WeightNormal) {
		t.Errorf("expected match for Cambria Math, haven't")
	}
}

func TestNormalizeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	n := NormalizeFontname("Clarendon", xfont.StyleItalic, xfont.WeightBold)
	if n != "clarendon-italic-bold" {
		t.Errorf("expected different normalized name for clarendon")
	}
}

func TestSplitStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	family, style, weight := SplitStyle("Gill Sans MT Bold Italic")
	assert.Equal(t, "Gill Sans MT", family)
	assert.Equal(t, xfont.StyleItalic, style)
	assert.Equal(t, xfont.WeightBold, weight)
	//
	family, style, weight = SplitStyle("  DejaVu   Sans Regular ")
	assert.Equal(t, "DejaVu Sans", family)
	assert.Equal(t, xfont.StyleNormal, style)
	assert.Equal(t, xfont.WeightNormal, weight)
}

var anonymousPro = FileDescriptor{
	Family:   "Anonymous Pro",
	Variants: []string{"regular", "italic", "700", "700italic"},
}

var antic = FileDescriptor{
	Family:   "Antic",
	Variants: []string{"regular"},
}

func TestClosestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typecase.resources")
	defer teardown()
	//
	descs := []FileDescriptor{anonymousPro, antic}
	for _, c := range []struct {
		s       xfont.Style
		w       xfont.Weight
		variant string
	}{
		{xfont.StyleNormal, xfont.WeightNormal, "regular"},
		{xfont.StyleItalic, xfont.WeightNormal, "italic"},
		{xfont.StyleNormal, xfont.WeightBold, "700"},
		{xfont.StyleItalic, xfont.WeightBold, "700italic"},
	} {
		match, variant, confidence := ClosestMatch(descs, exactFamily("anonymous pro"), c.s, c.w)
		assert.Equal(t, "Anonymous Pro", match.Family)
		assert.Equal(t, c.variant, variant)
		assert.True(t, confidence > LowConfidence, "expected confident match for %s", c.variant)
	}
	_, _, confidence := ClosestMatch(descs, exactFamily("Antic"), xfont.StyleItalic, xfont.WeightNormal)
	assert.True(t, confidence <= LowConfidence, "Antic has no italic variant")
	_, _, confidence = ClosestMatch(descs, exactFamily("Anonymous"), xfont.StyleNormal, xfont.WeightNormal)
	assert.Equal(t, NoConfidence, confidence, "family names should match literally")
}
