package annulus

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a polyline path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return "MoveTo" + el.P0.String()
	case LineToKind:
		return "LineTo" + el.P0.String()
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElement(%d)", el.Kind)
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG writes the SVG path commands for seq to w, separated by spaces.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	sep := ""
	for el := range seq {
		var err error
		switch el.Kind {
		case MoveToKind:
			_, err = fmt.Fprintf(w, "%sM%s,%s", sep, opts.format(el.P0.X), opts.format(el.P0.Y))
		case LineToKind:
			_, err = fmt.Fprintf(w, "%sL%s,%s", sep, opts.format(el.P0.X), opts.format(el.P0.Y))
		case ClosePathKind:
			_, err = fmt.Fprintf(w, "%sZ", sep)
		default:
			panic("unreachable")
		}
		if err != nil {
			return err
		}
		sep = " "
	}
	return nil
}

// format formats a coordinate, dropping trailing zeros and the sign of zero.
func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
