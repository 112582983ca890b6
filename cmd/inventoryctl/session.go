package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/medstock/internal/domain/entity"
)

// sessionFileName nombre fijo del registro de sesión dentro de ~/.medstock.
const sessionFileName = "session.json"

// FileSessionStore guarda la sesión como JSON en un archivo local.
type FileSessionStore struct {
	Path string
}

// DefaultSessionPath ~/.medstock/session.json.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".medstock", sessionFileName)
	}
	return filepath.Join(home, ".medstock", sessionFileName)
}

// Load devuelve nil sin error cuando no hay sesión guardada.
func (s FileSessionStore) Load() (*entity.Session, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, fmt.Errorf("sesión corrupta en %s: %w", s.Path, err)
	}
	if sess.Username == "" || sess.Token == "" {
		return nil, nil
	}
	return &sess, nil
}

// Save escribe la sesión con permisos 0600.
func (s FileSessionStore) Save(sess *entity.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, b, 0o600)
}

// Clear borra la sesión; no falla si no existía.
func (s FileSessionStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
