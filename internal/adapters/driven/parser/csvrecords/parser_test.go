package csvrecords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
)

func TestParse(t *testing.T) {
	data := []byte("aar,yrke_grovgruppe,antall_arbeidssokere\n2020,Ledere,100\n2021,\"Helse, pleie og omsorg\",250\n")

	records, err := New().Parse(data)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.RawRecord{"aar": "2020", "yrke_grovgruppe": "Ledere", "antall_arbeidssokere": "100"}, records[0])
	assert.Equal(t, "Helse, pleie og omsorg", records[1]["yrke_grovgruppe"])
}

func TestParse_SkipsBlankLines(t *testing.T) {
	data := []byte("a,b\n1,2\n\n\n3,4\n\n")

	records, err := New().Parse(data)

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "3", records[1]["a"])
}

func TestParse_StripsBOMAndHeaderWhitespace(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(" aar , antall\n2020,5\n")...)

	records, err := New().Parse(data)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2020", records[0]["aar"])
	assert.Equal(t, "5", records[0]["antall"])
}

func TestParse_CRLF(t *testing.T) {
	records, err := New().Parse([]byte("a,b\r\n1,2\r\n"))

	require.NoError(t, err)
	assert.Equal(t, "2", records[0]["b"])
}

func TestParse_ShortAndLongRows(t *testing.T) {
	records, err := New().Parse([]byte("a,b,c\n1\n1,2,3,4\n"))

	require.NoError(t, err)
	require.Len(t, records, 2)
	_, hasB := records[0]["b"]
	assert.False(t, hasB)
	assert.Len(t, records[1], 3)
}

func TestParse_Semicolon(t *testing.T) {
	t.Run("detected", func(t *testing.T) {
		records, err := New().Parse([]byte("aar;yrke;antall\n2020;\"A, B\";7\n"))

		require.NoError(t, err)
		assert.Equal(t, "A, B", records[0]["yrke"])
		assert.Equal(t, "7", records[0]["antall"])
	})

	t.Run("forced", func(t *testing.T) {
		records, err := New(WithDelimiter(';')).Parse([]byte("a;b\n1;2\n"))

		require.NoError(t, err)
		assert.Equal(t, "2", records[0]["b"])
	})
}

func TestParse_Empty(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "header only", data: []byte("a,b,c\n")},
		{name: "blank lines", data: []byte("\n\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := New().Parse(tt.data)

			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unbalanced quote in row", data: "a,b\n1,\"unterminated\n"},
		{name: "bare quote", data: "a,b\n1,x\"y\n"},
		{name: "unbalanced quote in header", data: "\"a,b\n1,2\n"},
		{name: "duplicate header", data: "a,a\n1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := New().Parse([]byte(tt.data))

			assert.Nil(t, records)
			assert.ErrorIs(t, err, domain.ErrParse)
			assert.NotErrorIs(t, err, domain.ErrTransport)
		})
	}
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ',', detectDelimiter([]byte("a,b;c,d")))
	assert.Equal(t, ';', detectDelimiter([]byte("a;b;c\n1,2,3")))
	assert.Equal(t, ',', detectDelimiter([]byte("\"a;b;c\",d")))
	assert.Equal(t, ',', detectDelimiter(nil))
}
