package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ridesharing/pkg/ctdf"
	"github.com/travigo/ridesharing/pkg/ridesharing"
)

func TestLoadExampleConfig(t *testing.T) {
	assert := assert.New(t)

	config, err := Load("../../data/ridesharing.yaml")
	require.NoError(t, err)

	require.Len(t, config.Providers, 2)
	assert.Equal(ridesharing.KindInstantSystem, config.Providers[0].Kind)
	assert.Equal(2*time.Second, config.Providers[0].Timeout)
	assert.Equal(1500*time.Millisecond, config.Providers[1].Timeout)
	assert.Equal("Karos Ile-de-France", config.Providers[1].OperatorName("karos_idf", "Karos"))

	assert.Equal(30*time.Minute, config.NewClassifier().RapidMargin)
	assert.Equal(2000.0, config.NewComposer().MaxAnchorDistance)
	assert.Equal("centime", config.Currencies["EUR"].Label)
	assert.False(config.Cache.Enabled)
}

func TestParseAppliesDefaults(t *testing.T) {
	assert := assert.New(t)

	config, err := Parse([]byte(`
providers:
  - id: minimal
    kind: karos
    service_url: http://localhost:9000/search
    modes: [ridesharing]
    network: Minimal
`))
	require.NoError(t, err)

	assert.Equal(1.12, config.WalkingSpeed)
	assert.Equal(30*time.Minute, *config.Classifier.RapidMargin)
	assert.Equal([]ctdf.Mode{ctdf.ModeRidesharing, ctdf.ModeBike}, config.EcologicModes)
	assert.Equal(ridesharing.DefaultTimeout, config.Providers[0].Timeout)
	assert.Equal(5.0, config.Providers[0].RatingScaleMax)
	assert.Equal(DefaultReportsIndex, config.Reports.Index)
	assert.Equal(ridesharing.DefaultCacheExpiration, config.Cache.TTL)
}

func TestParseKeepsNegativeRapidMargin(t *testing.T) {
	config, err := Parse([]byte("classifier:\n  rapid_margin: -5m\n"))
	require.NoError(t, err)

	assert.Equal(t, -5*time.Minute, config.NewClassifier().RapidMargin)
}

func TestParseRejectsInvalidProviders(t *testing.T) {
	tests := map[string]string{
		"unknown kind": `
providers:
  - {id: a, kind: blablacar, service_url: "http://x", modes: [ridesharing], network: n}
`,
		"missing modes": `
providers:
  - {id: a, kind: karos, service_url: "http://x", network: n}
`,
		"duplicate ids": `
providers:
  - {id: a, kind: karos, service_url: "http://x", modes: [ridesharing], network: n}
  - {id: a, kind: karos, service_url: "http://y", modes: [ridesharing], network: n}
`,
		"inverted rating scale": `
providers:
  - {id: a, kind: karos, service_url: "http://x", modes: [ridesharing], network: n, rating_scale_min: 5, rating_scale_max: 1}
`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestAPIKeyOverride(t *testing.T) {
	t.Setenv("TRAVIGO_PROVIDER_INSTANT_SYSTEM_API_KEY", "from-env")

	config, err := Load("../../data/ridesharing.yaml")
	require.NoError(t, err)

	assert.Equal(t, "from-env", config.Providers[0].APIKey)
	assert.Equal(t, "TRAVIGO_PROVIDER_INSTANT_SYSTEM_API_KEY", APIKeyVariable("instant-system"))
}
