package main

import (
	"image"
	"strings"
)

var shades = []rune(" .:-=+*#%@")

// asciiSink collects pixel coverage and prints it as shade characters.
// It grows to whatever area the font draws to.
type asciiSink struct {
	pixels map[image.Point]float32
	bounds image.Rectangle
}

func (s *asciiSink) Emit(x, y int, coverage float32) error {
	if s.pixels == nil {
		s.pixels = make(map[image.Point]float32)
		s.bounds = image.Rect(x, y, x+1, y+1)
	}
	p := image.Pt(x, y)
	s.pixels[p] += coverage
	s.bounds = s.bounds.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	return nil
}

func (s *asciiSink) String() string {
	var b strings.Builder
	for y := s.bounds.Min.Y; y < s.bounds.Max.Y; y++ {
		for x := s.bounds.Min.X; x < s.bounds.Max.X; x++ {
			b.WriteRune(shade(s.pixels[image.Pt(x, y)]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func shade(coverage float32) rune {
	if coverage <= 0 {
		return shades[0]
	}
	if coverage >= 1 {
		return shades[len(shades)-1]
	}
	return shades[int(coverage*float32(len(shades)-1)+0.5)]
}
