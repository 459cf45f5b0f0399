package ridesharing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRescaleRating(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2.5, RescaleRating(5, 0, 10, 0, 5))
	assert.Equal(0.0, RescaleRating(-3, 0, 5, 0, 5))
	assert.Equal(5.0, RescaleRating(12, 0, 5, 0, 5))
	assert.Equal(3.0, RescaleRating(3, 1, 5, 1, 5))
	assert.Equal(1.0, RescaleRating(4, 3, 3, 1, 5))
}

func TestNewRating(t *testing.T) {
	assert := assert.New(t)

	config := ProviderConfig{RatingScaleMin: 0, RatingScaleMax: 5}

	empty := NewRating(config, 0, 0, 0, 5)
	assert.Nil(empty.Value)
	assert.Equal(0, empty.Count)
	assert.Equal(5.0, empty.ScaleMax)

	rated := NewRating(config, 80, 12, 0, 100)
	if assert.NotNil(rated.Value) {
		assert.Equal(4.0, *rated.Value)
	}
	assert.Equal(12, rated.Count)
}

func TestNormaliseGender(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MALE", GenderMale},
		{"Female", GenderFemale},
		{" f ", GenderFemale},
		{"", GenderUnknown},
		{"OTHER", GenderUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormaliseGender(tc.input))
		})
	}
}

func TestCurrencyTableNormalise(t *testing.T) {
	assert := assert.New(t)

	table := DefaultCurrencyTable()

	value, label := table.Normalise(Price{Amount: 170, Currency: "EUR", Unit: PriceUnitMinor})
	assert.Equal(170.0, value)
	assert.Equal("centime", label)

	value, label = table.Normalise(Price{Amount: 2.35, Currency: "eur", Unit: PriceUnitMajor})
	assert.Equal(235.0, value)
	assert.Equal("centime", label)

	value, label = table.Normalise(Price{Amount: 12, Currency: "GBP", Unit: PriceUnitMajor})
	assert.Equal(12.0, value)
	assert.Equal("gbp", label)
}

func TestRequestKey(t *testing.T) {
	assert := assert.New(t)

	a := Request{Origin: pointAt(48.85661, 2.35222), Destination: pointAt(48.86, 2.36), Mode: "ridesharing"}
	b := Request{Origin: pointAt(48.856612, 2.352221), Destination: pointAt(48.86, 2.36), Mode: "ridesharing"}
	c := Request{Origin: pointAt(48.85, 2.35222), Destination: pointAt(48.86, 2.36), Mode: "ridesharing"}

	assert.Equal(a.Key(), b.Key())
	assert.NotEqual(a.Key(), c.Key())
}
