package application

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tris/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Storage:  config.Storage{Driver: config.DriverMemory},
		Game:     config.Game{Difficulty: "hard", Opening: config.OpeningRandom},
	}
}

func TestRunApp(t *testing.T) {
	t.Run("Plays against the bot until input ends", func(t *testing.T) {
		// Given: the human moves second and then stops typing
		out := &bytes.Buffer{}

		// When: the application runs on the in-memory store
		err := RunApp(testLogger(), testConfig(), strings.NewReader("n\n"), out)

		// Then: the bot has opened and the human was asked for a move
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Insert row and column separated by a space.")
		assert.Equal(t, 1, strings.Count(out.String(), "X"))
	})

	t.Run("Fails when redis is unreachable", func(t *testing.T) {
		conf := testConfig()
		conf.Storage.Driver = config.DriverRedis
		conf.Redis = config.Redis{Host: "127.0.0.1", Port: "1"}

		err := RunApp(testLogger(), conf, strings.NewReader(""), io.Discard)

		assert.ErrorContains(t, err, "could not connect to redis storage")
	})
}

func TestRunBench(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, RunBench(testLogger(), out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "minimax")
	assert.Contains(t, lines[1], "549946")
	assert.Contains(t, lines[2], "alpha-beta")
}
