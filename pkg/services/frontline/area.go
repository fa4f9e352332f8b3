package frontline

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/twpayne/go-geos"
)

const (
	DefaultTolerance = 0.01
	bufferQuadSegs   = 8
)

// AreaCalculator measures how far a polygon moved between two dates.
type AreaCalculator struct {
	tolerance float64
}

func NewAreaCalculator(tolerance float64) *AreaCalculator {
	return &AreaCalculator{tolerance: tolerance}
}

// Diff buffers both polygons by the tolerance and returns the area of their
// symmetric difference, in squared degrees.
func (c *AreaCalculator) Diff(p1, p2 orb.Polygon) (area float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrGeometry, r)
		}
	}()

	g1, err := c.buffered(p1)
	if err != nil {
		return 0, err
	}
	g2, err := c.buffered(p2)
	if err != nil {
		return 0, err
	}
	return g1.Difference(g2).Area() + g2.Difference(g1).Area(), nil
}

func (c *AreaCalculator) buffered(p orb.Polygon) (*geos.Geom, error) {
	g, err := geos.NewGeomFromWKT(wkt.MarshalString(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeometry, err)
	}
	return g.Buffer(c.tolerance, bufferQuadSegs), nil
}
