package navigation

import (
	"context"
	"fmt"
	"net/url"

	"admin-console/internal/session"
)

type Verdict int

const (
	Allow Verdict = iota
	Redirect
)

func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Redirect:
		return "redirect"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Decision es la respuesta del guard para una transicion.
type Decision struct {
	Verdict Verdict
	// To es el destino de la redireccion cuando Verdict == Redirect.
	To Location
}

// Guard decide si una transicion necesita sesion. El estado autenticado se
// deriva del Store en cada llamada; no se cachea.
type Guard struct {
	store     session.Store
	loginPath string
}

func NewGuard(store session.Store) *Guard {
	return &Guard{store: store, loginPath: LoginPath}
}

// Check aplica las reglas sobre el destino ya resuelto. Un error del Store
// distinto de ErrNoToken aborta la transicion.
func (g *Guard) Check(ctx context.Context, to Match) (Decision, error) {
	if !to.RequiresAuth() {
		return Decision{Verdict: Allow}, nil
	}

	authenticated, err := session.HasToken(ctx, g.store)
	if err != nil {
		return Decision{}, fmt.Errorf("check session: %w", err)
	}
	if authenticated {
		return Decision{Verdict: Allow}, nil
	}

	return Decision{
		Verdict: Redirect,
		To:      newLocation(g.loginPath, url.Values{RedirectParam: {to.FullPath}}),
	}, nil
}
