package font

import (
	"errors"
	"fmt"
	"image"

	"github.com/npillmayer/typecase/core"
)

// ErrInvertedBox is reported by BoxSize if a backend returns a layout box
// with its maximum corner left of or above its minimum corner.
var ErrInvertedBox = errors.New("inverted layout box")

// Descriptor describes a typeface at a given size, together with the
// outcome of resolving the typeface name to a backend.
//
// The zero value is not usable; create descriptors with New, From or NewWith.
// Descriptors are immutable and may be copied and shared between goroutines.
type Descriptor struct {
	name    string
	size    float64
	backend Backend
	err     error // resolution error, set once
}

// New creates a descriptor for a typeface and a size, using the default
// resolver. New never fails: if the typeface cannot be resolved, the error
// is stored and reported by every subsequent query.
func New(typeface string, size float64) Descriptor {
	return NewWith(DefaultResolver(), typeface, size)
}

// From creates a descriptor for a typeface at unit size.
func From(typeface string) Descriptor {
	return New(typeface, 1.0)
}

// NewWith creates a descriptor for a typeface and a size, resolving the
// typeface with r.
func NewWith(r Resolver, typeface string, size float64) Descriptor {
	d := Descriptor{name: typeface, size: size}
	if r == nil {
		d.err = ErrNoResolver
		return d
	}
	d.backend, d.err = r.Resolve(typeface)
	if d.err == nil && d.backend == nil {
		d.err = core.Error(core.EINTERNAL, "resolver returned no backend for %q", typeface)
	}
	if d.err != nil {
		d.backend = nil
		tracer().Infof("cannot resolve font %q: %v", typeface, d.err)
	} else {
		tracer().Debugf("resolved font %q", typeface)
	}
	return d
}

// Resize returns a descriptor for the same typeface in a different size.
// The backend (or resolution error) is shared, not resolved again.
func (d Descriptor) Resize(size float64) Descriptor {
	d.size = size
	return d
}

// Name returns the typeface name the descriptor has been created with.
func (d Descriptor) Name() string {
	return d.name
}

// Size returns the font size.
func (d Descriptor) Size() float64 {
	return d.size
}

// Err returns the resolution error, or nil if the typeface has been resolved.
func (d Descriptor) Err() error {
	return d.err
}

// Backend returns the resolved backend, or nil if resolution failed.
func (d Descriptor) Backend() Backend {
	return d.backend
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s@%g", d.name, d.size)
}

// LayoutBox returns the box text will occupy if rendered with this descriptor.
// If the typeface could not be resolved, the resolution error is returned.
func (d Descriptor) LayoutBox(text string) (BoundingBox, error) {
	if d.err != nil {
		return BoundingBox{}, d.err
	}
	return d.backend.EstimateLayout(d.size, text)
}

// BoxSize returns width and height of the box text will occupy if rendered
// with this descriptor.
//
// An inverted layout box reported by the backend results in an error
// wrapping ErrInvertedBox; boxes with zero extent are fine.
func (d Descriptor) BoxSize(text string) (width, height uint32, err error) {
	bbox, err := d.LayoutBox(text)
	if err != nil {
		return 0, 0, err
	}
	if bbox.Inverted() {
		return 0, 0, core.WrapError(ErrInvertedBox, core.EINVALID,
			"font %s reports layout box %v for %q", d, bbox, text)
	}
	return uint32(bbox.Dx()), uint32(bbox.Dy()), nil
}

// Draw rasterizes text with its top-left corner at origin, reporting every
// covered pixel to sink.
//
// err is the font-layer error: either the resolution error or a failure of
// the backend while drawing. If it is nil, sinkErr is the error the sink
// returned (if any), which has stopped the drawing. The sink is never called
// for descriptors without a backend.
func (d Descriptor) Draw(text string, origin image.Point, sink Sink) (sinkErr error, err error) {
	if d.err != nil {
		return nil, d.err
	}
	if sink == nil {
		return nil, core.Error(core.EINVALID, "cannot draw %q with font %s: no sink", text, d)
	}
	sinkErr, err = d.backend.Draw(origin, d.size, text, sink)
	if err != nil {
		return nil, err
	}
	return sinkErr, nil
}
