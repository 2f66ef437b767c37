package apiclient

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"admin-console/internal/session"
)

const (
	SessionExpiredTitle   = "提示"
	SessionExpiredMessage = "登录已过期，请重新登陆"
	LoginPath             = "/login"
)

// Dialog muestra un aviso bloqueante. Alert vuelve cuando el operador lo
// cierra; un error significa que no se cerro (p. ej. contexto cancelado).
type Dialog interface {
	Alert(ctx context.Context, title, message string) error
}

// Navigator fuerza un cambio de ruta.
type Navigator interface {
	Navigate(ctx context.Context, path string) error
}

// SessionExpiry ejecuta la recuperacion ante un 401: aviso, borrar token y
// volver al login, en ese orden. Varios 401 simultaneos comparten una sola
// recuperacion.
type SessionExpiry struct {
	store     session.Store
	dialog    Dialog
	navigator Navigator
	logger    *zap.Logger
	group     singleflight.Group
}

func NewSessionExpiry(store session.Store, dialog Dialog, navigator Navigator, logger *zap.Logger) *SessionExpiry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionExpiry{
		store:     store,
		dialog:    dialog,
		navigator: navigator,
		logger:    logger,
	}
}

// Handle bloquea hasta que termina la recuperacion en curso.
func (s *SessionExpiry) Handle(ctx context.Context) error {
	_, err, shared := s.group.Do("session-expired", func() (any, error) {
		return nil, s.recover(ctx)
	})
	if shared {
		s.logger.Debug("session expiry recovery shared with concurrent request")
	}
	return err
}

func (s *SessionExpiry) recover(ctx context.Context) error {
	s.logger.Warn("unauthorized access - redirecting to login")

	if s.dialog != nil {
		if err := s.dialog.Alert(ctx, SessionExpiredTitle, SessionExpiredMessage); err != nil {
			return fmt.Errorf("session expired dialog: %w", err)
		}
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if s.navigator != nil {
		if err := s.navigator.Navigate(ctx, LoginPath); err != nil {
			return fmt.Errorf("navigate to login: %w", err)
		}
	}
	return nil
}
