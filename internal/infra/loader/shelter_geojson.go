package loader

import (
	"io"
	"math"
	"strconv"
	"strings"

	"hazardmap/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	shelterSource      = "geojson"
	unknownShelterName = "名称不明"
)

// Property names in priority order: GSI national land numerical information
// (P20) first, then the Japanese labels used by municipal open data.
var (
	propName      = []string{"P20_002", "名称"}
	propWard      = []string{"P20_001", "区"}
	propAddress   = []string{"P20_003", "住所"}
	propType      = []string{"P20_004", "種別"}
	propCapacity  = []string{"P20_005", "収容人数"}
	propPhone     = []string{"電話", "phone"}
	propCondition = []string{"開設条件", "opening_condition"}
)

// ShelterGeoJSON is the parsed content of a shelter feature collection.
type ShelterGeoJSON struct {
	Shelters []*entity.Shelter
	// Ignored counts features without a usable point geometry.
	Ignored int
}

// ReadShelterGeoJSON parses a FeatureCollection of shelter points.
func ReadShelterGeoJSON(r io.Reader) (*ShelterGeoJSON, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read GeoJSON")
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode GeoJSON feature collection")
	}

	out := &ShelterGeoJSON{}
	for _, feature := range fc.Features {
		pt, ok := featurePoint(feature)
		if !ok {
			out.Ignored++

			continue
		}

		props := feature.Properties
		name := firstString(props, propName...)
		if name == "" {
			name = unknownShelterName
		}

		out.Shelters = append(out.Shelters, &entity.Shelter{
			Name:             name,
			Ward:             firstString(props, propWard...),
			Address:          firstString(props, propAddress...),
			Type:             firstString(props, propType...),
			Capacity:         parseCapacity(firstValue(props, propCapacity...)),
			Lat:              pt.Lat(),
			Lon:              pt.Lon(),
			Phone:            firstString(props, propPhone...),
			OpeningCondition: firstString(props, propCondition...),
			Source:           shelterSource,
		})
	}

	return out, nil
}

func featurePoint(f *geojson.Feature) (orb.Point, bool) {
	if f == nil || f.Geometry == nil {
		return orb.Point{}, false
	}

	switch g := f.Geometry.(type) {
	case orb.Point:
		return g, true
	case orb.MultiPoint:
		if len(g) > 0 {
			return g[0], true
		}
	}

	return orb.Point{}, false
}

func firstValue(props geojson.Properties, keys ...string) any {
	for _, key := range keys {
		if v, ok := props[key]; ok && v != nil && v != "" {
			return v
		}
	}

	return nil
}

func firstString(props geojson.Properties, keys ...string) string {
	switch v := firstValue(props, keys...).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// parseCapacity turns a capacity property into a head count. Missing,
// non-numeric and NaN values yield nil.
func parseCapacity(v any) *int {
	var n int

	switch c := v.(type) {
	case float64:
		if math.IsNaN(c) {
			return nil
		}
		n = int(c)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}

	return &n
}
