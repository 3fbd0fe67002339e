package content

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrInvalid is returned when a table breaks a structural rule.
var ErrInvalid = errors.New("content: invalid")

// Load reads every table.
// Search order per file: dir -> ~/.fenetres/content -> ./configs/content -> embedded default
func Load(dir string) (*Store, error) {
	return load(func(name string) ([]byte, string, error) {
		return read(dir, name)
	})
}

// MustDefault returns the embedded tables and panics if they are broken.
// Tests and the SSH server use it.
func MustDefault() *Store {
	s, err := load(readEmbedded)
	if err != nil {
		panic(err)
	}
	return s
}

func load(readFile func(name string) ([]byte, string, error)) (*Store, error) {
	s := &Store{}
	tables := []struct {
		name string
		dst  any
	}{
		{"quiz.yaml", &s.Quiz},
		{"files.yaml", &s.Files},
		{"settings.yaml", &s.Settings},
		{"popups.yaml", &s.Popups},
		{"browser.yaml", &s.Browser},
	}
	for _, t := range tables {
		data, src, err := readFile(t.name)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, t.dst); err != nil {
			return nil, fmt.Errorf("content: parse %s: %w", src, err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func readEmbedded(name string) ([]byte, string, error) {
	data, err := embedded.ReadFile("data/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("content: read embedded %s: %w", name, err)
	}
	return data, "embedded " + name, nil
}

func read(dir, name string) ([]byte, string, error) {
	var candidates []string
	if dir != "" {
		candidates = append(candidates, filepath.Join(dir, name))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".fenetres", "content", name))
	}
	candidates = append(candidates, filepath.Join("configs", "content", name))

	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return data, path, nil
		}
	}
	return readEmbedded(name)
}

// Validate checks the structural rules the desktop relies on.
func (s *Store) Validate() error {
	if len(s.Quiz.Questions) == 0 {
		return fmt.Errorf("%w: quiz has no questions", ErrInvalid)
	}
	for i, q := range s.Quiz.Questions {
		correct := 0
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("%w: question %d has %d correct options", ErrInvalid, i+1, correct)
		}
	}
	if _, ok := s.Files.Folders[RootFolder]; !ok {
		return fmt.Errorf("%w: no %q folder", ErrInvalid, RootFolder)
	}
	for name, f := range s.Files.Folders {
		for _, e := range f.Entries {
			if e.IsFolder() {
				if _, ok := s.Files.Folders[e.Folder]; !ok {
					return fmt.Errorf("%w: folder %q links to unknown %q", ErrInvalid, name, e.Folder)
				}
			}
		}
	}
	if len(s.Settings.Sections) == 0 {
		return fmt.Errorf("%w: no settings sections", ErrInvalid)
	}
	return nil
}
