// Package file persiste users y listings como arrays JSON en disco con la
// disciplina load-all / replace-all del diseño original.
package file

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Store maneja un único archivo JSON. Replace escribe a un temporal y
// renombra, así un crash a mitad de escritura nunca deja visible un archivo
// truncado. El mutex serializa los ciclos load-modify-replace dentro del
// proceso; dos handles independientes sobre el mismo path siguen siendo
// last-writer-wins — limitación aceptada de este diseño.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.ensure(); err != nil {
		return nil, err
	}
	return s, nil
}

// ensure crea el archivo con un array vacío si todavía no existe.
func (s *Store) ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte("[]\n"), 0o644)
}

// Load lee el contenido completo del archivo en v.
func (s *Store) Load(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(v)
}

// Replace reemplaza el contenido completo de forma atómica.
func (s *Store) Replace(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(v)
}

// Mutate ejecuta fn con el lock tomado; fn usa load/replace para hacer el
// read-modify-write completo como una sola sección crítica.
func (s *Store) Mutate(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) load(v any) error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func (s *Store) replace(v any) error {
	// Indentado como el original, para poder inspeccionar el archivo a mano.
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
