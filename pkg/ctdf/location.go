package ctdf

import (
	"github.com/golang/geo/s2"
)

const EarthRadiusMeters = 6371008.8

// Location is a GeoJSON style point, coordinates are stored as [longitude, latitude]
type Location struct {
	Type        string    `json:"type" yaml:"type" groups:"basic"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates" groups:"basic"`
}

func NewPoint(latitude float64, longitude float64) Location {
	return Location{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

func (l Location) IsValid() bool {
	return len(l.Coordinates) == 2
}

func (l Location) Longitude() float64 {
	if !l.IsValid() {
		return 0
	}
	return l.Coordinates[0]
}

func (l Location) Latitude() float64 {
	if !l.IsValid() {
		return 0
	}
	return l.Coordinates[1]
}

// Distance returns the great-circle distance in metres between the two points
func (l *Location) Distance(other *Location) float64 {
	a := s2.LatLngFromDegrees(l.Latitude(), l.Longitude())
	b := s2.LatLngFromDegrees(other.Latitude(), other.Longitude())

	return a.Distance(b).Radians() * EarthRadiusMeters
}

func (l Location) Equal(other Location) bool {
	return l.IsValid() && other.IsValid() &&
		l.Coordinates[0] == other.Coordinates[0] && l.Coordinates[1] == other.Coordinates[1]
}

// Place is a named point used as the start or end of a Section
type Place struct {
	Name     string   `json:"name" groups:"basic"`
	Location Location `json:"location" groups:"basic"`
}

// LineString is the geometry attached to a Section
type LineString struct {
	Type        string      `json:"type" groups:"basic"`
	Coordinates [][]float64 `json:"coordinates" groups:"basic"`
}

func NewLineString(points ...Location) *LineString {
	lineString := &LineString{
		Type:        "LineString",
		Coordinates: [][]float64{},
	}

	for _, point := range points {
		if point.IsValid() {
			lineString.Coordinates = append(lineString.Coordinates, []float64{point.Longitude(), point.Latitude()})
		}
	}

	return lineString
}

// Length is the sum of the great-circle distances between consecutive points
func (ls *LineString) Length() float64 {
	if ls == nil {
		return 0
	}

	var total float64
	for i := 1; i < len(ls.Coordinates); i++ {
		a := NewPoint(ls.Coordinates[i-1][1], ls.Coordinates[i-1][0])
		b := NewPoint(ls.Coordinates[i][1], ls.Coordinates[i][0])

		total += a.Distance(&b)
	}

	return total
}
