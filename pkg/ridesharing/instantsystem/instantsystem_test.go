package instantsystem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

func testConfig(serviceURL string) ridesharing.ProviderConfig {
	return ridesharing.ProviderConfig{
		ID:             "instant-system",
		Kind:           ridesharing.KindInstantSystem,
		ServiceURL:     serviceURL,
		APIKey:         "key",
		Modes:          []ctdf.Mode{ctdf.ModeRidesharing},
		Network:        "Super Covoit",
		RatingScaleMin: 0,
		RatingScaleMax: 5,
	}
}

func testRequest() ridesharing.Request {
	return ridesharing.Request{
		Origin:      ctdf.NewPoint(0.0000898312, 0.0000898312),
		Destination: ctdf.NewPoint(0.00071865, 0.00188646),
		DateTime:    time.Date(2012, 6, 14, 7, 55, 0, 0, time.UTC),
		Mode:        ctdf.ModeRidesharing,
	}
}

func serveFile(t *testing.T, filename string) *httptest.Server {
	payload, err := os.ReadFile(filename)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "apiKey key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		assert.Equal(t, "Super Covoit", r.URL.Query().Get("network"))
		assert.NotEmpty(t, r.URL.Query().Get("from"))
		assert.NotEmpty(t, r.URL.Query().Get("fromDateTime"))

		w.Header().Set("Content-Type", "application/json")
		w.Write(payload)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestFetchTranslatesOffer(t *testing.T) {
	assert := assert.New(t)

	server := serveFile(t, "testdata/search_response.json")
	connector := New(testConfig(server.URL), server.Client())

	offers, err := connector.Fetch(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, offers, 1)

	offer := offers[0]
	assert.Equal("24bab9de-653c-4cc4-a947-389c59cf0423", offer.ID)
	assert.Equal("instant-system", offer.ProviderID)
	assert.Equal(ridesharing.RoleDriver, offer.Role)
	assert.Equal(ctdf.ModeRidesharing, offer.Mode)

	assert.Equal(52.4999825, offer.Pickup.Location.Latitude())
	assert.Equal(13.399965, offer.Pickup.Location.Longitude())
	assert.Equal(52.49879, offer.Dropoff.Location.Latitude())

	assert.Equal(1057*time.Second, offer.Duration())
	assert.Equal(300, offer.Distance)

	assert.Equal(170.0, offer.Price.Amount)
	assert.Equal("EUR", offer.Price.Currency)
	assert.Equal(ridesharing.PriceUnitMinor, offer.Price.Unit)

	assert.Equal(ctdf.Seats{Available: 4, Total: 4}, offer.Seats)

	assert.Equal("Jean P.", offer.Driver.Alias)
	assert.Equal(ridesharing.GenderMale, offer.Driver.Gender)
	assert.Equal("https://dummyimage.com/128x128/C8E6C9/000.png&text=JP", offer.Driver.Image)
	assert.Nil(offer.Driver.Rating.Value)
	assert.Equal(0.0, offer.Driver.Rating.ScaleMin)
	assert.Equal(5.0, offer.Driver.Rating.ScaleMax)

	assert.Equal("Super Covoit", offer.Network)
	assert.Equal("Instant System", offer.Operator)

	if assert.NotNil(offer.Shape) {
		assert.Len(offer.Shape.Coordinates, 247)
	}
}

func TestFetchSkipsMalformedJourneys(t *testing.T) {
	server := serveFile(t, "testdata/search_response_partial.json")
	connector := New(testConfig(server.URL), server.Client())

	offers, err := connector.Fetch(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Len(t, offers, 1)
}

func TestTranslateSkipsPathsWithoutCoordinates(t *testing.T) {
	connector := New(testConfig("http://localhost"), http.DefaultClient)

	offers, err := connector.Translate([]byte(`{
		"total": 1,
		"journeys": [{
			"id": "no-coordinates",
			"paths": [{
				"mode": "RIDESHARINGAD",
				"from": {"name": "Somewhere"},
				"to": {"name": "Bruz", "lat": 52.49879, "lon": 13.45107},
				"departureDate": "2017-12-25T08:07:59+01:00",
				"arrivalDate": "2017-12-25T08:25:36+01:00",
				"rideSharingAd": {"id": "ad-without-pickup", "type": "DRIVER"}
			}]
		}]
	}`))
	require.NoError(t, err)

	assert.Empty(t, offers)
}

func TestFetchRejectsUnreadablePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	connector := New(testConfig(server.URL), server.Client())

	_, err := connector.Fetch(context.Background(), testRequest())
	assert.Equal(t, ridesharing.ErrorKindInvalidResponse, ridesharing.KindOf(err))
}

func TestFetchReportsAuthFailures(t *testing.T) {
	server := serveFile(t, "testdata/search_response.json")

	config := testConfig(server.URL)
	config.APIKey = "wrong"
	connector := New(config, server.Client())

	_, err := connector.Fetch(context.Background(), testRequest())
	assert.Equal(t, ridesharing.ErrorKindUnauthorized, ridesharing.KindOf(err))
}

func TestFetchReportsTimeouts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	connector := New(testConfig(server.URL), server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := connector.Fetch(ctx, testRequest())
	assert.Equal(t, ridesharing.ErrorKindTimeout, ridesharing.KindOf(err))
}

func TestOperatorOverride(t *testing.T) {
	server := serveFile(t, "testdata/search_response.json")

	config := testConfig(server.URL)
	config.Operator = "Covoit Rennes"
	connector := New(config, server.Client())

	offers, err := connector.Fetch(context.Background(), testRequest())
	require.NoError(t, err)
	require.Len(t, offers, 1)

	assert.Equal(t, "Covoit Rennes", offers[0].Operator)
}
