package font

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/typecase/core"
	"github.com/npillmayer/typecase/core/dimen"
)

// ParseStyle creates a descriptor from CSS font declarations, using the
// default resolver. Recognized properties are `font-family`, `font-size` and
// the shorthand `font`, e.g.
//
//     font-family: "Go Sans", sans-serif; font-size: 12pt
//
// Families are tried in order and the first one which resolves is taken.
// If none resolves, the descriptor for the first family is returned, holding
// its resolution error. Sizes are converted to pixels at 72 DPI; the
// default size is 1.0.
//
// An error is returned only for malformed declarations.
func ParseStyle(decl string) (Descriptor, error) {
	return ParseStyleWith(DefaultResolver(), decl)
}

// ParseStyleWith is like ParseStyle, resolving typefaces with r.
func ParseStyleWith(r Resolver, decl string) (Descriptor, error) {
	decls, err := parser.ParseDeclarations(decl)
	if err != nil {
		return Descriptor{}, core.WrapError(err, core.EINVALID, "cannot parse font declaration %q", decl)
	}
	var families []string
	size := 1.0
	for _, d := range decls {
		switch strings.ToLower(d.Property) {
		case "font-family":
			families = splitFamilies(d.Value)
		case "font-size":
			if size, err = parseSize(d.Value); err != nil {
				return Descriptor{}, err
			}
		case "font":
			if size, families, err = parseShorthand(d.Value); err != nil {
				return Descriptor{}, err
			}
		default:
			tracer().Debugf("ignoring font property %s", d.Property)
		}
	}
	if len(families) == 0 {
		return Descriptor{}, core.Error(core.EINVALID, "no font family in declaration %q", decl)
	}
	var first Descriptor
	for i, family := range families {
		d := NewWith(r, family, size)
		if d.Err() == nil {
			return d, nil
		}
		if i == 0 {
			first = d
		}
	}
	return first, nil
}

func parseSize(value string) (float64, error) {
	d, ispcnt, err := dimen.ParseDimen(value)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "invalid font size %q", value)
	}
	if ispcnt {
		return float64(d) / 100, nil
	}
	return d.Pixels(72), nil
}

// parseShorthand splits `[style] [weight] size family[, family…]`.
// Style and weight keywords are skipped, as are numeric weights (`700`),
// which is why the size has to carry a unit.
func parseShorthand(value string) (float64, []string, error) {
	fields := strings.Fields(value)
	for i, f := range fields {
		if strings.Trim(f, "0123456789") == "" {
			continue
		}
		if _, _, err := dimen.ParseDimen(f); err != nil {
			continue
		}
		size, err := parseSize(f)
		if err != nil {
			return 0, nil, err
		}
		families := splitFamilies(strings.Join(fields[i+1:], " "))
		return size, families, nil
	}
	return 0, nil, core.Error(core.EINVALID, "font shorthand %q lacks a size", value)
}

func splitFamilies(value string) []string {
	var families []string
	for _, f := range strings.Split(value, ",") {
		f = strings.TrimSpace(f)
		f = strings.Trim(f, `"'`)
		if f != "" {
			families = append(families, f)
		}
	}
	return families
}
