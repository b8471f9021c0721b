package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("非法级别回退到info", func(t *testing.T) {
		closer, err := Init(Config{Level: "verbose", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		defer closer.Close()

		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("输出到文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		closer, err := Init(Config{Level: "debug", Format: "json", Output: path})
		require.NoError(t, err)

		log.Info().Str("module", "logger").Msg("hello")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"module":"logger"`)
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Cleanup(func() {
		_, _ = Init(Config{Level: "info", Output: "stderr"})
	})
}
