package appconfig

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerHeartbeatURLMapDecode(t *testing.T) {
	url := "https://hc.example.com/ping/abc"
	encoded := base64.StdEncoding.EncodeToString([]byte(url))

	var m WorkerHeartbeatURLMap
	require.NoError(t, m.Decode("warm:"+encoded))
	assert.Equal(t, WorkerHeartbeatURLMap{"warm": url}, m)

	require.NoError(t, m.Decode(""))
	assert.Empty(t, m)

	assert.Error(t, m.Decode("warm"))
	assert.Error(t, m.Decode("warm:!!notbase64"))
}
