package hashtable

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DemoConfig is the configuration read by the hashdemo harness.
type DemoConfig struct {
	Capacity int      `json:"capacity"`
	Keys     []string `json:"keys"`
}

func (c *DemoConfig) Serialize() []byte {
	b, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return b
}

func DeserializeDemoConfig(b []byte) (*DemoConfig, error) {
	var c *DemoConfig
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, errors.Wrap(err, "parse demo config")
	}
	if c == nil {
		return nil, errors.New("empty demo config")
	}
	if c.Capacity <= 0 {
		return nil, errors.Errorf("demo config: capacity must be positive, got %d", c.Capacity)
	}
	if len(c.Keys) == 0 {
		return nil, errors.New("demo config: no keys given")
	}
	return c, nil
}
