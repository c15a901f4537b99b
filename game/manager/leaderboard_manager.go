package manager

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"

	"snake-powerups/game/types"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var (
	ErrLeaderboardNotFound  = errors.New("leaderboard file not found")
	ErrLeaderboardMalformed = errors.New("leaderboard file malformed")
)

// LeaderboardEntry is one ranked result as stored on disk.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// LeaderboardManager keeps the top scores in memory and rewrites the whole
// file on every change. A broken or missing file never stops the game.
type LeaderboardManager struct {
	path    string
	entries []LeaderboardEntry
	logger  *slog.Logger
}

// NewLeaderboardManager loads path once; any failure leaves the board empty.
func NewLeaderboardManager(path string, logger *slog.Logger) *LeaderboardManager {
	if logger == nil {
		logger = slog.Default()
	}
	lm := &LeaderboardManager{
		path:    path,
		entries: make([]LeaderboardEntry, 0, types.LeaderboardSize),
		logger:  logger.With("leaderboard", path),
	}

	entries, err := lm.Load()
	switch {
	case err == nil:
		lm.entries = entries
		lm.logger.Debug("leaderboard loaded", "entries", len(entries))
	case errors.Is(err, ErrLeaderboardNotFound):
		lm.logger.Debug("no leaderboard yet, starting empty")
	case errors.Is(err, ErrLeaderboardMalformed):
		lm.logger.Warn("leaderboard unreadable, starting empty", "err", err)
	default:
		lm.logger.Warn("could not read leaderboard, starting empty", "err", err)
	}
	return lm
}

func (lm *LeaderboardManager) Path() string {
	return lm.path
}

// Load reads the file, keeping well-formed entries in ranked order.
func (lm *LeaderboardManager) Load() ([]LeaderboardEntry, error) {
	data, err := os.ReadFile(lm.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(ErrLeaderboardNotFound, lm.path)
		}
		return nil, errors.Wrapf(err, "read leaderboard %s", lm.path)
	}

	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(ErrLeaderboardMalformed, "invalid json")
	}
	arr := gjson.ParseBytes(data)
	if !arr.IsArray() {
		return nil, errors.Wrapf(ErrLeaderboardMalformed, "expected array, got %s", arr.Type)
	}

	entries := make([]LeaderboardEntry, 0, types.LeaderboardSize)
	skipped := 0
	arr.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("username")
		score := v.Get("score")
		if name.Type != gjson.String || score.Type != gjson.Number || score.Num != math.Trunc(score.Num) {
			skipped++
			return true
		}
		entries = append(entries, LeaderboardEntry{
			Username: name.Str,
			Score:    int(score.Int()),
		})
		return true
	})
	if skipped > 0 {
		lm.logger.Warn("skipped malformed leaderboard entries", "skipped", skipped)
	}

	rank(entries)
	return truncate(entries), nil
}

// Save writes entries as an indented JSON array, creating parent dirs.
func (lm *LeaderboardManager) Save(entries []LeaderboardEntry) error {
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	if dir := filepath.Dir(lm.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "create leaderboard directory")
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal leaderboard")
	}
	if err := os.WriteFile(lm.path, data, 0644); err != nil {
		return errors.Wrap(err, "write leaderboard")
	}
	return nil
}

// Record adds a result, keeps the top ten and persists them. It returns the
// 1-based place of the new entry, or 0 if it did not make the cut.
func (lm *LeaderboardManager) Record(username string, score int) int {
	if username == "" {
		return 0
	}

	// Stable sort puts a tie after the existing equal scores.
	place := 1
	for _, e := range lm.entries {
		if e.Score >= score {
			place++
		}
	}
	if place > types.LeaderboardSize {
		place = 0
	}

	lm.entries = append(lm.entries, LeaderboardEntry{Username: username, Score: score})
	rank(lm.entries)
	lm.entries = truncate(lm.entries)

	if err := lm.Save(lm.entries); err != nil {
		lm.logger.Warn("leaderboard not saved", "err", err)
	} else {
		lm.logger.Info("score recorded", "username", username, "score", score, "place", place)
	}
	return place
}

// Entries returns a copy of the current ranking.
func (lm *LeaderboardManager) Entries() []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(lm.entries))
	copy(out, lm.entries)
	return out
}

func rank(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

func truncate(entries []LeaderboardEntry) []LeaderboardEntry {
	if len(entries) > types.LeaderboardSize {
		return entries[:types.LeaderboardSize]
	}
	return entries
}
