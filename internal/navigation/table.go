package navigation

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const maxRedirects = 10

var (
	ErrNoMatch       = errors.New("no route matches path")
	ErrRedirectLoop  = errors.New("too many redirects")
	ErrDuplicatePath = errors.New("duplicate route path")
)

// Match es el resultado de resolver una ruta: la cadena de registros
// coincidentes, del padre al hijo, y el destino final.
type Match struct {
	Location
	Name    string
	Title   string
	Matched []Route
}

// RequiresAuth indica si algun registro de la cadena exige sesion.
func (m Match) RequiresAuth() bool {
	for _, r := range m.Matched {
		if r.RequiresAuth {
			return true
		}
	}
	return false
}

type record struct {
	path  string
	chain []Route
}

// Table resuelve rutas contra una lista de Route.
type Table struct {
	records  []record
	catchAll *record
}

// NewTable aplana las rutas anidadas. Las rutas hijas pueden ser absolutas
// o relativas al padre.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{}
	seen := make(map[string]bool)
	if err := t.add(routes, "", nil, seen); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) add(routes []Route, parentPath string, parents []Route, seen map[string]bool) error {
	for _, r := range routes {
		p := strings.TrimSpace(r.Path)
		if p == "" {
			return fmt.Errorf("route %q: empty path", r.Name)
		}
		leaf := r
		leaf.Children = nil
		chain := append(append([]Route(nil), parents...), leaf)

		if p == CatchAll {
			if t.catchAll != nil {
				return fmt.Errorf("%w: %s", ErrDuplicatePath, p)
			}
			t.catchAll = &record{path: p, chain: chain}
			continue
		}

		full := p
		if !strings.HasPrefix(p, "/") {
			full = path.Join(parentPath, p)
		}
		full = cleanPath(full)
		if seen[full] {
			return fmt.Errorf("%w: %s", ErrDuplicatePath, full)
		}
		seen[full] = true
		t.records = append(t.records, record{path: full, chain: chain})

		if len(r.Children) > 0 {
			if err := t.add(r.Children, full, chain, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolve busca el registro de fullPath y sigue las redirecciones estaticas.
func (t *Table) Resolve(fullPath string) (Match, error) {
	loc, err := ParseLocation(fullPath)
	if err != nil {
		return Match{}, fmt.Errorf("parse %q: %w", fullPath, err)
	}

	for i := 0; i < maxRedirects; i++ {
		rec := t.lookup(loc.Path)
		if rec == nil {
			return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, loc.Path)
		}
		leaf := rec.chain[len(rec.chain)-1]
		if leaf.Redirect != "" {
			if loc, err = ParseLocation(leaf.Redirect); err != nil {
				return Match{}, fmt.Errorf("parse redirect %q: %w", leaf.Redirect, err)
			}
			continue
		}
		return Match{
			Location: loc,
			Name:     leaf.Name,
			Title:    leaf.Title,
			Matched:  rec.chain,
		}, nil
	}
	return Match{}, fmt.Errorf("%w: %s", ErrRedirectLoop, fullPath)
}

func (t *Table) lookup(p string) *record {
	for i := range t.records {
		if t.records[i].path == p {
			return &t.records[i]
		}
	}
	return t.catchAll
}
