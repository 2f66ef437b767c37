package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRequest marca los fallos ocurridos antes de enviar la peticion
// (construccion o lectura del token). Nada sale por la red.
var ErrRequest = errors.New("request not sent")

// StatusError es una respuesta con status >= 400, devuelta sin reintentos.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status=%d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status=%d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized informa si err es una respuesta 401.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.IsUnauthorized()
}
