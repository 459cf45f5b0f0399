package global

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ridesharing/pkg/config"
	"github.com/travigo/ridesharing/pkg/ridesharing"
	"github.com/travigo/ridesharing/pkg/ridesharing/instantsystem"
	"github.com/travigo/ridesharing/pkg/ridesharing/karos"
)

func TestNewConnectorSelectsKind(t *testing.T) {
	connector, err := NewConnector(ridesharing.ProviderConfig{ID: "is", Kind: ridesharing.KindInstantSystem}, http.DefaultClient)
	require.NoError(t, err)
	assert.IsType(t, &instantsystem.Connector{}, connector)

	connector, err = NewConnector(ridesharing.ProviderConfig{ID: "karos", Kind: ridesharing.KindKaros}, http.DefaultClient)
	require.NoError(t, err)
	assert.IsType(t, &karos.Connector{}, connector)

	_, err = NewConnector(ridesharing.ProviderConfig{ID: "other", Kind: "blablacar"}, http.DefaultClient)
	assert.True(t, errors.Is(err, ridesharing.ErrUnsupportedKind))
}

func TestSetupFromConfig(t *testing.T) {
	instanceConfig, err := config.Load("../../../data/ridesharing.yaml")
	require.NoError(t, err)

	augmenter, coordinator, err := Setup(instanceConfig)
	require.NoError(t, err)

	assert.Len(t, coordinator.Connectors(), 2)
	assert.Equal(t, "karos", coordinator.Providers()[1].ID)
	assert.Equal(t, 2000.0, augmenter.Composer.MaxAnchorDistance)
	assert.Nil(t, augmenter.ReportSink)
}

func TestParseCoordinates(t *testing.T) {
	location, err := ParseCoordinates("48.8566, 2.3522")
	require.NoError(t, err)
	assert.Equal(t, 48.8566, location.Latitude())
	assert.Equal(t, 2.3522, location.Longitude())

	_, err = ParseCoordinates("48.8566")
	assert.Error(t, err)

	_, err = ParseCoordinates("north,2.35")
	assert.Error(t, err)
}
