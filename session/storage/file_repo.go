// Package storage provides the file-backed durable store for session
// credentials, filling the role browser localStorage plays for a web client.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/workzen/hrms-client/session"
)

const credentialsFile = "credentials.json"

var _ session.Repo = (*FileRepo)(nil)

// FileRepo persists session entries as a single JSON object on disk. Every
// mutation rewrites the file synchronously so an abrupt exit cannot lose
// session state.
type FileRepo struct {
	path string
	lock sync.Mutex
}

// NewFileRepo creates a repo storing credentials under dataFolder.
func NewFileRepo(dataFolder string) *FileRepo {
	return &FileRepo{path: filepath.Join(dataFolder, credentialsFile)}
}

func (r *FileRepo) Get(key string) (string, bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	entries, err := r.load()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

func (r *FileRepo) Set(key, value string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return r.save(entries)
}

func (r *FileRepo) Delete(key string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return r.save(entries)
}

func (r *FileRepo) load() (map[string]string, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "[FileRepo.load] read credentials file")
	}

	entries := map[string]string{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A corrupt file degrades to an empty store rather than wedging
		// every session operation behind a parse error.
		return map[string]string{}, nil
	}
	return entries, nil
}

func (r *FileRepo) save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileRepo.save] create data folder")
	}
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[FileRepo.save] marshal entries")
	}
	if err := os.WriteFile(r.path, raw, 0o600); err != nil {
		return errors.Wrap(err, "[FileRepo.save] write credentials file")
	}
	return nil
}
