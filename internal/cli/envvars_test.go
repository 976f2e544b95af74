package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBaseEnv(t *testing.T) {
	t.Setenv("PRCOMMENT_CONFIG", "conf/prcomment.yaml")
	t.Setenv("PRCOMMENT_LOG_LEVEL", "debug")
	t.Setenv("PRCOMMENT_STATE", "all")
	t.Setenv("PRCOMMENT_YES", "true")

	base, err := loadBaseEnv()
	require.NoError(t, err)
	assert.Equal(t, "conf/prcomment.yaml", base.ConfigPath)
	assert.Equal(t, "debug", base.LogLevel)
	assert.Equal(t, "all", base.State)
	assert.True(t, base.Yes)
}

func TestLoadBaseEnv_UnsetLeavesZeroValues(t *testing.T) {
	// t.Setenv registers the restore; os.Unsetenv removes any host value.
	for _, key := range []string{"PRCOMMENT_CONFIG", "PRCOMMENT_LOG_LEVEL", "PRCOMMENT_STATE", "PRCOMMENT_YES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	base, err := loadBaseEnv()
	require.NoError(t, err)
	assert.Empty(t, base.ConfigPath)
	assert.Empty(t, base.State)
	assert.False(t, base.Yes)
}
