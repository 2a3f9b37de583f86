package game

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const (
	configDirName = "pacman"
	highScoreFN   = "highscore.json"
)

type highScoreRecord struct {
	Score int `json:"score"`
}

// configBaseDir determines the base directory to store config.
// If PACMAN_CONFIG_DIR is set, it is used as-is. Otherwise, use UserConfigDir()/pacman.
func configBaseDir() (string, error) {
	if env := os.Getenv("PACMAN_CONFIG_DIR"); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

func highScoreFilePath() (string, error) {
	dir, err := configBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, highScoreFN), nil
}

// LoadHighScore reads the persisted high score, returning 0 if nothing
// usable is found.
func LoadHighScore() int {
	path, err := highScoreFilePath()
	if err != nil {
		return 0
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var rec highScoreRecord
	if err := json.Unmarshal(data, &rec); err != nil || rec.Score < 0 {
		return 0
	}
	return rec.Score
}

// SaveHighScore writes the score atomically via a temp file rename.
func SaveHighScore(score int) error {
	if score < 0 {
		return errors.New("score must be non-negative")
	}
	path, err := highScoreFilePath()
	if err != nil {
		return err
	}
	data, err := json.Marshal(highScoreRecord{Score: score})
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
