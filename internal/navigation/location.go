package navigation

import (
	"net/url"
	"path"
	"sort"
	"strings"
)

// Location es un destino ya normalizado.
type Location struct {
	Path     string
	Query    url.Values
	FullPath string
}

// ParseLocation normaliza una ruta con query opcional ("/user?page=2").
func ParseLocation(raw string) (Location, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = HomePath
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, err
	}
	return newLocation(u.Path, u.Query()), nil
}

func newLocation(p string, query url.Values) Location {
	p = cleanPath(p)
	if query == nil {
		query = url.Values{}
	}
	full := p
	if encoded := encodeQuery(query); encoded != "" {
		full += "?" + encoded
	}
	return Location{Path: p, Query: query, FullPath: full}
}

func cleanPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// encodeQuery codifica con claves ordenadas y deja "/" sin escapar,
// asi el destino se lee igual que en la barra de direcciones.
func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		for _, v := range q[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(queryEscape(k))
			b.WriteByte('=')
			b.WriteString(queryEscape(v))
		}
	}
	return b.String()
}

func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "%2F", "/")
}
