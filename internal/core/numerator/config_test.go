package numerator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archivx/internal/core/apperror"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"IN", DirectionIncoming},
		{"in", DirectionIncoming},
		{"INCOMING", DirectionIncoming},
		{" outgoing ", DirectionOutgoing},
		{"OUT", DirectionOutgoing},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDirection(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestParseDirection_Unknown(t *testing.T) {
	_, err := ParseDirection("INTERNAL")
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidDirection))
	assert.False(t, Direction("X").IsValid())
}
