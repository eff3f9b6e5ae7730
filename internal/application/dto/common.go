package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Tamaños de página: por defecto y tope por request.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// DefaultPage normaliza la paginación: limit 20 por defecto y 100 como máximo,
// offset nunca negativo.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SucursalDTO par nombre+dirección que identifica una sucursal en requests y responses.
type SucursalDTO struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
}
