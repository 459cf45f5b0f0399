package ridesharing

import (
	"errors"

	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/twpayne/go-polyline"
)

var ErrEmptyPolyline = errors.New("empty polyline")

// DecodePolyline decodes a Google encoded polyline (precision 5) into a LineString
func DecodePolyline(encoded string) (*ctdf.LineString, error) {
	if encoded == "" {
		return nil, ErrEmptyPolyline
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}

	lineString := ctdf.NewLineString()
	for _, coord := range coords {
		lineString.Coordinates = append(lineString.Coordinates, []float64{coord[1], coord[0]})
	}

	return lineString, nil
}

// EncodePolyline is the inverse of DecodePolyline
func EncodePolyline(lineString *ctdf.LineString) string {
	if lineString == nil {
		return ""
	}

	coords := make([][]float64, 0, len(lineString.Coordinates))
	for _, coordinate := range lineString.Coordinates {
		coords = append(coords, []float64{coordinate[1], coordinate[0]})
	}

	return string(polyline.EncodeCoords(coords))
}
