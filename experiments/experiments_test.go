package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"pawns/config"
	"pawns/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Games = 2
	cfg.OutDir = t.TempDir()
	return cfg
}

func TestRoundRobin(t *testing.T) {
	matchUps := RoundRobin([]string{"fillfirst", "maxrow", "control"})

	require.Len(t, matchUps, 6, "Each ordered pair should play")
	require.Equal(t, metrics.MatchUp{ID: 1, Red: "fillfirst", Blue: "maxrow"}, matchUps[0])
	require.Equal(t, metrics.MatchUp{ID: 6, Red: "control", Blue: "maxrow"}, matchUps[5])
}

func TestRunTournament(t *testing.T) {
	t.Run("playing and recording every game", func(t *testing.T) {
		cfg := testConfig(t)
		matchUps := RoundRobin([]string{"fillfirst", "random"})

		summary, err := RunTournament("smoke", cfg, matchUps)

		require.NoError(t, err)
		require.Len(t, summary.Standings, 2)
		for _, s := range summary.Standings {
			require.Equal(t, cfg.Games, s.Games())
			require.Zero(t, s.Unfinished, "Games should end before the turn limit")
		}
		for _, name := range []string{"match_ups.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(summary.Dir, name))
			require.NoError(t, err, name)
		}
	})

	t.Run("head to head uses the configured strategies", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.RedStrategy, cfg.BlueStrategy = "control>fillfirst", "pass"

		summary, err := RunTournament("h2h", cfg, HeadToHead(cfg))

		require.NoError(t, err)
		require.Equal(t, cfg.Games, summary.Standings[0].RedWins, "Passing every turn should lose")
	})

	t.Run("unknown strategies fail before playing", func(t *testing.T) {
		cfg := testConfig(t)

		_, err := RunTournament("bad", cfg, []metrics.MatchUp{{ID: 1, Red: "fillfirst", Blue: "nope"}})

		require.ErrorContains(t, err, "nope")
		entries, err := os.ReadDir(cfg.OutDir)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}
