package frontline

import (
	"fmt"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/paulmach/orb"
)

// PolygonBuilder closes a line against one front's anchors.
type PolygonBuilder struct {
	front   domain.Front
	anchors []orb.Point
}

func NewPolygonBuilder(front domain.Front, anchors []domain.Anchor) (*PolygonBuilder, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("front %s: no anchors configured", front)
	}
	pb := &PolygonBuilder{front: front, anchors: make([]orb.Point, 0, len(anchors))}
	for _, a := range anchors {
		pb.anchors = append(pb.anchors, orb.Point{a.Longitude, a.Latitude})
	}
	return pb, nil
}

func (pb *PolygonBuilder) Front() domain.Front {
	return pb.front
}

// Build appends the anchors after the line and closes the ring. Points are
// never reordered, so the ring may self-intersect.
func (pb *PolygonBuilder) Build(line orb.LineString) (orb.Polygon, error) {
	if len(line) == 0 {
		return nil, fmt.Errorf("front %s: %w", pb.front, ErrEmptyLine)
	}
	ring := make(orb.Ring, 0, len(line)+len(pb.anchors)+1)
	ring = append(ring, line...)
	ring = append(ring, pb.anchors...)
	ring = append(ring, ring[0])
	return orb.Polygon{ring}, nil
}
