package mvt

import "fmt"

// SegmentKind identifies the type of a curve segment.
type SegmentKind uint8

const (
	MoveKind SegmentKind = iota
	LineKind
	QuadKind
	CubicKind
	CloseKind
)

func (k SegmentKind) String() string {
	switch k {
	case MoveKind:
		return "MoveTo"
	case LineKind:
		return "LineTo"
	case QuadKind:
		return "QuadTo"
	case CubicKind:
		return "CubicTo"
	case CloseKind:
		return "Close"
	default:
		return fmt.Sprintf("SegmentKind(%d)", uint8(k))
	}
}

// NumPoints returns how many coordinate pairs a segment of kind k stores.
// Close stores one: the point of the subpath's MoveTo. Unknown kinds
// report -1.
func (k SegmentKind) NumPoints() int {
	switch k {
	case MoveKind, LineKind, CloseKind:
		return 1
	case QuadKind:
		return 2
	case CubicKind:
		return 3
	default:
		return -1
	}
}

// Segment is a single element of a Curve. The set of implementations is
// closed: MoveTo, LineTo, QuadTo, CubicTo and Close.
type Segment interface {
	Kind() SegmentKind
	// End returns the point the pen rests on after the segment.
	End() Point
	point(i int) Point
	transform(m Matrix) Segment
}

// MoveTo starts a new subpath.
type MoveTo struct {
	Point Point
}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

// Close ends the current subpath with a line back to its MoveTo point,
// which it records in Point.
type Close struct {
	Point Point
}

func (MoveTo) Kind() SegmentKind  { return MoveKind }
func (LineTo) Kind() SegmentKind  { return LineKind }
func (QuadTo) Kind() SegmentKind  { return QuadKind }
func (CubicTo) Kind() SegmentKind { return CubicKind }
func (Close) Kind() SegmentKind   { return CloseKind }

func (s MoveTo) End() Point  { return s.Point }
func (s LineTo) End() Point  { return s.Point }
func (s QuadTo) End() Point  { return s.Point }
func (s CubicTo) End() Point { return s.Point }
func (s Close) End() Point   { return s.Point }

func (s MoveTo) point(int) Point { return s.Point }
func (s LineTo) point(int) Point { return s.Point }
func (s Close) point(int) Point  { return s.Point }

func (s QuadTo) point(i int) Point {
	if i == 0 {
		return s.Control
	}
	return s.Point
}

func (s CubicTo) point(i int) Point {
	switch i {
	case 0:
		return s.Control1
	case 1:
		return s.Control2
	default:
		return s.Point
	}
}

func (s MoveTo) transform(m Matrix) Segment {
	return MoveTo{Point: m.TransformPoint(s.Point)}
}

func (s LineTo) transform(m Matrix) Segment {
	return LineTo{Point: m.TransformPoint(s.Point)}
}

func (s QuadTo) transform(m Matrix) Segment {
	return QuadTo{
		Control: m.TransformPoint(s.Control),
		Point:   m.TransformPoint(s.Point),
	}
}

func (s CubicTo) transform(m Matrix) Segment {
	return CubicTo{
		Control1: m.TransformPoint(s.Control1),
		Control2: m.TransformPoint(s.Control2),
		Point:    m.TransformPoint(s.Point),
	}
}

func (s Close) transform(m Matrix) Segment {
	return Close{Point: m.TransformPoint(s.Point)}
}

// drawingSegment builds a move, line, quad or cubic segment from exactly
// as many points as the kind stores. Close is not accepted here because its
// point is never supplied by the caller.
func drawingSegment(kind SegmentKind, pts []Point) (Segment, error) {
	n := kind.NumPoints()
	if n < 0 || kind == CloseKind {
		return nil, fmt.Errorf("segment kind %v: %w", kind, ErrInvalidArgument)
	}
	if len(pts) != n {
		return nil, fmt.Errorf("%v takes %d point(s), got %d: %w", kind, n, len(pts), ErrInvalidArgument)
	}
	switch kind {
	case MoveKind:
		return MoveTo{Point: pts[0]}, nil
	case LineKind:
		return LineTo{Point: pts[0]}, nil
	case QuadKind:
		return QuadTo{Control: pts[0], Point: pts[1]}, nil
	default:
		return CubicTo{Control1: pts[0], Control2: pts[1], Point: pts[2]}, nil
	}
}
