package repository

import "github.com/ferreinv/ferreteria-api/internal/domain/entity"

// UsuarioRepository define el puerto mínimo que necesita el login.
type UsuarioRepository interface {
	// GetPorEmail devuelve el usuario o nil si no existe.
	GetPorEmail(email string) (*entity.Usuario, error)
}
