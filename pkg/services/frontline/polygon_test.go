package frontline

import (
	"testing"

	"github.com/de-tools/war-atlas/pkg/models/domain"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonBuilder_Build(t *testing.T) {
	pb, err := NewPolygonBuilder(domain.FrontNorthern, NorthernAnchors)
	require.NoError(t, err)

	line := orb.LineString{{34.0, 50.5}, {33.0, 50.6}}
	polygon, err := pb.Build(line)
	require.NoError(t, err)
	require.Len(t, polygon, 1)

	ring := polygon[0]
	assert.Equal(t, orb.Ring{
		{34.0, 50.5},
		{33.0, 50.6},
		{31.1837, 52.0601},
		{33.2891, 52.3332},
		{34.0412, 52.1837},
		{34.0, 50.5},
	}, ring)
	assert.True(t, ring.Closed())
}

func TestPolygonBuilder_EasternAnchorOrder(t *testing.T) {
	pb, err := NewPolygonBuilder(domain.FrontEastern, EasternAnchors)
	require.NoError(t, err)

	polygon, err := pb.Build(orb.LineString{{37.8, 48.0}, {36.2, 49.9}})
	require.NoError(t, err)

	ring := polygon[0]
	require.Len(t, ring, 2+6+1)
	names := []string{"Odessa", "Sevastopol", "Kerch", "Mariupol", "Luhansk", "Vovchansk"}
	for i, a := range EasternAnchors {
		assert.Equal(t, names[i], a.Name)
		assert.Equal(t, orb.Point{a.Longitude, a.Latitude}, ring[2+i])
	}
}

func TestPolygonBuilder_Errors(t *testing.T) {
	_, err := NewPolygonBuilder(domain.FrontEastern, nil)
	assert.Error(t, err)

	pb, err := NewPolygonBuilder(domain.FrontEastern, EasternAnchors)
	require.NoError(t, err)
	_, err = pb.Build(nil)
	assert.ErrorIs(t, err, ErrEmptyLine)
}
