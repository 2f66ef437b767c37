// Package session guarda el token de sesion de la consola.
//
// El mismo Store se inyecta en el cliente HTTP y en el guard de navegacion,
// de modo que ambos leen siempre el mismo slot.
package session

import (
	"context"
	"errors"
)

// TokenKey es la clave fija bajo la que se persiste el token.
const TokenKey = "token"

// ErrNoToken indica que no hay sesion guardada.
var ErrNoToken = errors.New("session token not found")

// Store define el acceso al token de sesion persistido.
type Store interface {
	// Get devuelve ErrNoToken si no hay token; cualquier otro error es un fallo de lectura.
	Get(ctx context.Context) (string, error)
	// Set guarda el token. Un token vacio equivale a Clear.
	Set(ctx context.Context, token string) error
	// Clear borra el token; no falla si ya estaba vacio.
	Clear(ctx context.Context) error
}

// HasToken informa si hay un token guardado, tratando ErrNoToken como ausencia.
func HasToken(ctx context.Context, store Store) (bool, error) {
	if store == nil {
		return false, nil
	}
	_, err := store.Get(ctx)
	if errors.Is(err, ErrNoToken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
