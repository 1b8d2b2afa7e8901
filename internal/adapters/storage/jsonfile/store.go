package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pet-triage/internal/domain/records"
)

// Directorios bajo BaseDir: data/pets y data/cases.
const (
	PetsDir  = "pets"
	CasesDir = "cases"
)

// dir es un directorio de registros {id}.json.
type dir struct {
	path string
}

func openDir(base, name string) (dir, error) {
	p := filepath.Join(base, name)
	if err := os.MkdirAll(p, 0o755); err != nil {
		return dir{}, fmt.Errorf("jsonfile: mkdir %s: %w", p, err)
	}
	return dir{path: p}, nil
}

func (d dir) file(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", fmt.Errorf("jsonfile: invalid id %q", id)
	}
	return filepath.Join(d.path, id+".json"), nil
}

// create escribe el registro una sola vez: O_EXCL rechaza ids repetidos.
func (d dir) create(id string, v any) error {
	name, err := d.file(id)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("jsonfile: encode %s: %w", id, err)
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return records.ErrDuplicateID
		}
		return fmt.Errorf("jsonfile: create %s: %w", name, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return fmt.Errorf("jsonfile: write %s: %w", name, err)
	}
	return f.Close()
}

func (d dir) read(id string, v any) error {
	name, err := d.file(id)
	if err != nil {
		return records.ErrNotFound
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records.ErrNotFound
		}
		return fmt.Errorf("jsonfile: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("jsonfile: decode %s: %w", name, err)
	}
	return nil
}

// idsOf lista los ids del usuario, ordenados por timestamp del id.
func (d dir) idsOf(userID string) ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("jsonfile: list %s: %w", d.path, err)
	}

	type item struct {
		id  string
		sec int64
	}
	items := make([]item, 0)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".json")
		owner, at, ok := records.ParseID(id)
		if !ok || owner != userID {
			continue
		}
		items = append(items, item{id: id, sec: at.Unix()})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].sec == items[j].sec {
			return items[i].id < items[j].id
		}
		return items[i].sec < items[j].sec
	})

	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out, nil
}
