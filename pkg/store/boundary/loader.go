package boundary

import (
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// Load reads a GeoJSON feature collection of administrative regions.
func Load(path string) (*geojson.FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary file: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse boundary %s: %w", path, err)
	}
	return fc, nil
}

// Regions returns the value of the name property of each feature, skipping features without one.
func Regions(fc *geojson.FeatureCollection, property string) []string {
	if fc == nil {
		return nil
	}
	var names []string
	for _, f := range fc.Features {
		if name, ok := f.Properties[property].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}
