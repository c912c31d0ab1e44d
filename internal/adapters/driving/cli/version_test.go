package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
	}{
		{name: "dev build", version: "dev", want: "arbeidssokere version dev\n"},
		{name: "release", version: "1.2.0", want: "arbeidssokere version 1.2.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := version
			version = tt.version
			defer func() { version = prev }()

			// No services: version must not need them.
			out, err := execute(t, nil, "version")

			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
