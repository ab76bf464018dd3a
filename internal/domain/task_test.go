package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	for _, valid := range []string{"New", "Progress", "Complete"} {
		status, err := ParseTaskStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, TaskStatus(valid), status)
	}

	for _, invalid := range []string{"", "new", "Done", "InProgress"} {
		_, err := ParseTaskStatus(invalid)
		assert.Error(t, err, "%q should not parse", invalid)
	}
}
