package entity

import "time"

// Usuario mínimo para autenticación y auditoría (el nombre viaja en el token y
// queda como "usuario" en los registros).
type Usuario struct {
	ID             string
	Nombre         string
	Email          string
	HashContrasena string
	Rol            string
	CreatedAt      time.Time
}
