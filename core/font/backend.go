package font

import (
	"fmt"
	"image"
)

// BoundingBox is a box in pixel space, spanning from corner Min to corner Max.
// Y-coordinates grow downwards. Backends report boxes relative to a pen
// position on the baseline, thus Min.Y is usually negative.
type BoundingBox struct {
	Min, Max image.Point
}

// Box is a shortcut for BoundingBox{image.Pt(x0, y0), image.Pt(x1, y1)}.
// Unlike image.Rect, the corners are not swapped.
func Box(x0, y0, x1, y1 int) BoundingBox {
	return BoundingBox{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// Dx is the horizontal extent of this box. It is negative for inverted boxes.
func (bbox BoundingBox) Dx() int {
	return bbox.Max.X - bbox.Min.X
}

// Dy is the vertical extent of this box. It is negative for inverted boxes.
func (bbox BoundingBox) Dy() int {
	return bbox.Max.Y - bbox.Min.Y
}

// Empty is a predicate: has this box a zero (or negative) area?
func (bbox BoundingBox) Empty() bool {
	return bbox.Dx() <= 0 || bbox.Dy() <= 0
}

// Inverted is true if Max lies left of or above Min.
func (bbox BoundingBox) Inverted() bool {
	return bbox.Dx() < 0 || bbox.Dy() < 0
}

func (bbox BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", bbox.Min.X, bbox.Min.Y, bbox.Max.X, bbox.Max.Y)
}

// --- Backend capability ----------------------------------------------------

// Backend is a resolved font, able to measure and rasterize text.
//
// Implementations must be safe for concurrent use, as descriptors share
// their backend with every descriptor derived from them.
type Backend interface {
	// EstimateLayout returns the pixel box text will occupy at a given size.
	EstimateLayout(size float64, text string) (BoundingBox, error)

	// Draw rasterizes text at a given size, with origin being the top-left
	// corner of the line. Every pixel covered is reported to sink.
	// If sink returns an error, Draw stops and returns that error unchanged
	// as sinkErr. Failures of the backend itself are returned as err.
	Draw(origin image.Point, size float64, text string, sink Sink) (sinkErr error, err error)
}

// Resolver maps a typeface name to a backend.
type Resolver interface {
	Resolve(name string) (Backend, error)
}

// ResolverFunc is an adapter to use ordinary functions as Resolvers.
type ResolverFunc func(name string) (Backend, error)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (Backend, error) {
	return f(name)
}

// --- Pixel sink ------------------------------------------------------------

// Sink receives the pixels of rasterized text. Coverage is an antialiasing
// intensity between 0.0 and 1.0.
//
// A non-nil return value requests the producer to stop emitting pixels.
type Sink interface {
	Emit(x, y int, coverage float32) error
}

// SinkFunc is an adapter to use ordinary functions as Sinks.
type SinkFunc func(x, y int, coverage float32) error

// Emit calls f(x, y, coverage).
func (f SinkFunc) Emit(x, y int, coverage float32) error {
	return f(x, y, coverage)
}
