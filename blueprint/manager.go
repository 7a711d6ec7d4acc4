// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blueprint

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// A Description is the per-blueprint description.json sidecar the engine
// uses to list the blueprint library.
//
type Description struct {
	Description string `json:"description"`
	LocalID     string `json:"localId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Version     int    `json:"version"`
}

const noDescription = "#{STEAM_WORKSHOP_NO_DESCRIPTION}"

// A Manager reads and writes blueprints in a blueprint library directory.
// Blueprints live each in its own folder named by a generated unique id;
// they are located by the name field of their description file, not by the
// folder name.
//
type Manager struct {
	dir string
	log *zap.Logger
}

// NewManager returns a manager over an existing directory.
//
func NewManager(dir string, log *zap.Logger) (*Manager, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "blueprint folder %q", dir)
	}
	if !fi.IsDir() {
		return nil, errors.Errorf("blueprint folder %q is not a directory", dir)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{dir: dir, log: log}, nil
}

// Dir returns the library directory.
//
func (m *Manager) Dir() string {
	return m.dir
}

// Find returns the folder of the blueprint with the given name.
//
func (m *Manager) Find(name string) (string, bool) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(m.dir, e.Name())
		raw, err := os.ReadFile(filepath.Join(dir, "description.json"))
		if err != nil {
			continue
		}
		var d Description
		if err := json.Unmarshal(raw, &d); err != nil {
			continue
		}
		if d.Name == name {
			return dir, true
		}
	}
	return "", false
}

// Save writes bp under the given name. An existing blueprint with that name
// is overwritten only when overwrite is set; the return value reports
// whether anything was written.
//
func (m *Manager) Save(name string, bp *Blueprint, overwrite bool) (bool, error) {
	folder, found := m.Find(name)
	if found {
		if !overwrite {
			return false, nil
		}
		m.log.Info("overwriting blueprint",
			zap.String("name", name),
			zap.String("localId", filepath.Base(folder)))
		return true, m.write(folder, name, noDescription, bp)
	}
	folder = filepath.Join(m.dir, uuid.NewString())
	return true, m.write(folder, name, noDescription, bp)
}

// SetDescription rewrites the description text of an existing blueprint.
//
func (m *Manager) SetDescription(name, text string) error {
	folder, found := m.Find(name)
	if !found {
		return errors.Errorf("blueprint %q does not exist", name)
	}
	d := Description{
		Description: text,
		LocalID:     filepath.Base(folder),
		Name:        name,
		Type:        "Blueprint",
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(folder, "description.json"), raw)
}

func (m *Manager) write(folder, name, descr string, bp *Blueprint) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return errors.Wrap(err, "create blueprint folder")
	}
	raw, err := json.Marshal(bp)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(folder, "blueprint.json"), raw); err != nil {
		return errors.Wrap(err, "write blueprint")
	}
	d := Description{
		Description: descr,
		LocalID:     filepath.Base(folder),
		Name:        name,
		Type:        "Blueprint",
	}
	raw, err = json.Marshal(d)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(folder, "description.json"), raw); err != nil {
		return errors.Wrap(err, "write description")
	}
	return nil
}

// writeFileAtomic writes via a temp file and rename so a crashed save never
// leaves a half-written document behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}
