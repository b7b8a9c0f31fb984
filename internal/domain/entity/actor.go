package entity

// SystemUserID es el user_id centinela usado cuando no hay actor autenticado.
const SystemUserID = "system"

// Actor representa al usuario autenticado que ejecuta una operación de
// escritura. Se pasa explícito a los casos de uso (nil = sin sesión) en lugar
// de leerlo de estado global, para poder simular "sin actor" en tests.
type Actor struct {
	ID    string
	Email string
	Role  string
}

// UserID devuelve el id del actor, o SystemUserID si no hay actor.
func (a *Actor) UserID() string {
	if a == nil || a.ID == "" {
		return SystemUserID
	}
	return a.ID
}
