package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFrequency(t *testing.T) {
	assert.Equal(t, baseFreq, Frequency(3))
	assert.Equal(t, baseFreq, Frequency(0))
	assert.Less(t, Frequency(3), Frequency(4))
	assert.Less(t, Frequency(4), Frequency(6))
	assert.Equal(t, maxFreq, Frequency(100))
}

func TestPlayer_SilentUntilInit(t *testing.T) {
	p := NewPlayer(zap.NewNop())
	assert.NotPanics(t, func() {
		p.Pop(3)
		p.Swish()
		p.Close()
	})
}
