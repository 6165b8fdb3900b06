package appconfig

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// WorkerHeartbeatURLMap decodes "name:base64url,name:base64url".
type WorkerHeartbeatURLMap map[string]string

func (m *WorkerHeartbeatURLMap) Decode(value string) error {
	*m = WorkerHeartbeatURLMap{}
	if strings.TrimSpace(value) == "" {
		return nil
	}
	for _, pair := range strings.Split(value, ",") {
		name, encoded, ok := strings.Cut(pair, ":")
		if !ok {
			return fmt.Errorf("invalid heartbeat URL map: expect a `:` separated key pair for each element, but got: %s", value)
		}
		val, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
		if err != nil {
			return fmt.Errorf("invalid value in worker heartbeat URL map for %q: base64 decoding failed: %w", name, err)
		}
		(*m)[strings.TrimSpace(name)] = string(val)
	}
	return nil
}
