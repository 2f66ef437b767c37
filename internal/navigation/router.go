package navigation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var ErrNoHistory = errors.New("no previous location")

// Listener recibe cada cambio de ubicacion confirmado.
type Listener func(from, to Match)

// Router mantiene la ubicacion actual y pasa cada transicion por el Guard.
type Router struct {
	table  *Table
	guard  *Guard
	logger *zap.Logger

	mu        sync.Mutex
	current   Match
	history   []Match
	listeners []Listener
}

func NewRouter(table *Table, guard *Guard, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		table:  table,
		guard:  guard,
		logger: logger,
	}
}

// Current devuelve la ubicacion confirmada; vacia antes de la primera navegacion.
func (r *Router) Current() Match {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// OnChange registra un listener.
func (r *Router) OnChange(fn Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Push navega a fullPath y apila la ubicacion anterior.
func (r *Router) Push(ctx context.Context, fullPath string) (Match, error) {
	return r.navigate(ctx, fullPath, true)
}

// Replace navega sin tocar el historial.
func (r *Router) Replace(ctx context.Context, fullPath string) (Match, error) {
	return r.navigate(ctx, fullPath, false)
}

// Navigate es Push sin resultado; lo usa el cliente HTTP tras expirar la sesion.
func (r *Router) Navigate(ctx context.Context, fullPath string) error {
	_, err := r.Push(ctx, fullPath)
	return err
}

// Back vuelve a la ubicacion anterior, pasando otra vez por el guard.
func (r *Router) Back(ctx context.Context) (Match, error) {
	r.mu.Lock()
	if len(r.history) == 0 {
		r.mu.Unlock()
		return Match{}, ErrNoHistory
	}
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.mu.Unlock()

	return r.navigate(ctx, prev.FullPath, false)
}

func (r *Router) navigate(ctx context.Context, fullPath string, push bool) (Match, error) {
	target := fullPath
	for i := 0; i < maxRedirects; i++ {
		to, err := r.table.Resolve(target)
		if err != nil {
			return Match{}, err
		}

		decision, err := r.guard.Check(ctx, to)
		if err != nil {
			r.logger.Warn("navigation aborted", zap.String("to", to.FullPath), zap.Error(err))
			return Match{}, err
		}
		if decision.Verdict == Redirect {
			r.logger.Info("navigation redirected",
				zap.String("to", to.FullPath),
				zap.String("redirect", decision.To.FullPath),
			)
			target = decision.To.FullPath
			continue
		}

		r.commit(to, push)
		return to, nil
	}
	return Match{}, fmt.Errorf("%w: %s", ErrRedirectLoop, fullPath)
}

func (r *Router) commit(to Match, push bool) {
	r.mu.Lock()
	from := r.current
	if push && from.Path != "" {
		r.history = append(r.history, from)
	}
	r.current = to
	listeners := append([]Listener(nil), r.listeners...)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(from, to)
	}
}
