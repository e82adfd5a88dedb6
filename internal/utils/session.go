package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/stride/internal/models"
)

const (
	sessionFile     = "current_session.toml"
	credentialsFile = "credentials.toml"
)

// StateDir holds the draft session and the login credentials.
type StateDir string

func (d StateDir) path(name string) (string, error) {
	if err := os.MkdirAll(string(d), 0755); err != nil {
		return "", err
	}
	return filepath.Join(string(d), name), nil
}

func (d StateDir) SaveSessionState(state *models.SessionState) error {
	return d.save(sessionFile, state, 0644)
}

func (d StateDir) LoadSessionState() (*models.SessionState, error) {
	var state models.SessionState
	if err := d.load(sessionFile, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (d StateDir) ClearSessionState() error {
	return d.remove(sessionFile)
}

func (d StateDir) SessionExists() bool {
	path, err := d.path(sessionFile)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}

// The token file is only readable by its owner.
func (d StateDir) SaveCredentials(c *models.Credentials) error {
	return d.save(credentialsFile, c, 0600)
}

func (d StateDir) LoadCredentials() (*models.Credentials, error) {
	var c models.Credentials
	if err := d.load(credentialsFile, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (d StateDir) ClearCredentials() error {
	err := d.remove(credentialsFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (d StateDir) save(name string, v interface{}, perm os.FileMode) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(v)
}

func (d StateDir) load(name string, v interface{}) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}
	_, err = toml.DecodeFile(path, v)
	return err
}

func (d StateDir) remove(name string) error {
	path, err := d.path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
