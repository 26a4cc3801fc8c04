package legacy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSequence(t *testing.T) {
	tests := []struct {
		seq  string
		want string
	}{
		{"799798", "2002-01"},
		{"797987", "2020-12"},
		{"799998", "2000-01"},
	}
	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			month, err := DecodeSequence(tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, month.Format("2006-01"))
			assert.Equal(t, 1, month.Day())
		})
	}
}

func TestDecodeSequenceRejectsGarbage(t *testing.T) {
	_, err := DecodeSequence("abc123")
	assert.Error(t, err)
}

func TestSequenceRoundTrip(t *testing.T) {
	for _, seq := range []string{"799798", "797987", "799998", "796990"} {
		month, err := DecodeSequence(seq)
		require.NoError(t, err)
		assert.Equal(t, seq, EncodeSequence(month))
	}

	month := time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)
	decoded, err := DecodeSequence(EncodeSequence(month))
	require.NoError(t, err)
	assert.True(t, decoded.Equal(month))
}
