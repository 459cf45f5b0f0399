package elastic_client

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromEnvironment(t *testing.T) {
	assert := assert.New(t)

	options, err := OptionsFromEnvironment(map[string]string{
		"TRAVIGO_ELASTICSEARCH_ADDRESS":  "http://elastic:9200",
		"TRAVIGO_ELASTICSEARCH_USERNAME": "travigo",
	})
	require.NoError(t, err)

	assert.Equal("http://elastic:9200", options.Address)
	assert.Equal("travigo", options.Username)
	assert.Equal(15*time.Second, options.FlushInterval)
	assert.Equal(30*time.Second, options.StartupTimeout)

	options, err = OptionsFromEnvironment(map[string]string{"TRAVIGO_ELASTICSEARCH_FLUSH_INTERVAL": "2s"})
	require.NoError(t, err)
	assert.Equal(2*time.Second, options.FlushInterval)

	_, err = OptionsFromEnvironment(map[string]string{"TRAVIGO_ELASTICSEARCH_FLUSH_INTERVAL": "soon"})
	assert.Error(err)
}

func TestConnectWithoutAddress(t *testing.T) {
	t.Setenv("TRAVIGO_ELASTICSEARCH_ADDRESS", "")

	assert.NoError(t, Connect(false))
	assert.ErrorIs(t, Connect(true), ErrNotConfigured)
	assert.Nil(t, Client)

	IndexRequest("reports", bytes.NewReader([]byte(`{}`)))
	WaitUntilQueueEmpty()
}
