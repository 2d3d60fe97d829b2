package procinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSSBytesReportsNonZeroForRunningProcess(t *testing.T) {
	rss, err := RSSBytes()
	require.NoError(t, err)
	assert.Greater(t, rss, uint64(0))
}
