package hashtable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemoConfigRoundTrip(t *testing.T) {
	in := &DemoConfig{Capacity: 13, Keys: []string{"apple", "ant"}}
	out, err := DeserializeDemoConfig(in.Serialize())
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestDemoConfigRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"malformed":    `{"capacity": `,
		"empty":        `null`,
		"zero cap":     `{"capacity": 0, "keys": ["a"]}`,
		"negative cap": `{"capacity": -4, "keys": ["a"]}`,
		"no keys":      `{"capacity": 8, "keys": []}`,
	}
	for name, raw := range cases {
		_, err := DeserializeDemoConfig([]byte(raw))
		require.Error(t, err, name)
	}
}
