// Package cohorts reconciles the subscriber roster spreadsheet with the
// bot's user store and unsubscribe log.
package cohorts

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/amby-app/feedsync/pkg/errors"
)

// User is one bot subscriber from the user store.
type User struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Locale   string `json:"locale"`
	Platform string `json:"platform"`
}

// LoadUsers reads the bot user store from a JSON file. A missing file
// yields an empty roster.
func LoadUsers(path string) ([]User, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return users, nil
}

// ReadUnsubscribed reads the unsubscribe log, one user id per line, and
// truncates it so each id is processed exactly once. A missing file is
// created empty.
func ReadUnsubscribed(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.WrapIO("read", path, err)
	}

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return nil, errors.WrapIO("write", path, err)
	}

	var ids []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}
