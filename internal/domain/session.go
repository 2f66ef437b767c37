package domain

// Credentials es el cuerpo de POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult devuelve el token de sesion emitido por el backend.
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}
