// Package navigation implementa la tabla de rutas de la consola y el guard
// que exige sesion antes de entrar en las vistas protegidas.
package navigation

const (
	HomePath     = "/"
	LoginPath    = "/login"
	NotFoundPath = "/404"
	// CatchAll coincide con cualquier ruta no registrada.
	CatchAll = "*"
	// RedirectParam lleva a la pantalla de login el destino pedido.
	RedirectParam = "redirect"
)

// Route describe una entrada de la tabla. Los hijos heredan RequiresAuth
// del padre porque el guard mira toda la cadena de coincidencias.
type Route struct {
	Path         string
	Name         string
	Title        string
	RequiresAuth bool
	Redirect     string
	Children     []Route
}

// DefaultRoutes devuelve la tabla de rutas de la consola.
func DefaultRoutes() []Route {
	return []Route{
		{
			Path:         HomePath,
			Name:         "home",
			RequiresAuth: true,
			Children: []Route{
				{Path: "/user", Name: "user", Title: "用户管理"},
				{Path: "/feedback", Name: "feedback", Title: "用户反馈"},
			},
		},
		{Path: LoginPath, Name: "login"},
		{Path: NotFoundPath, Name: "not-found"},
		{Path: CatchAll, Redirect: NotFoundPath},
	}
}
