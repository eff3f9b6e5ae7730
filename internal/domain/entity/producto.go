package entity

// Producto es el dato maestro de catálogo (no lo administra este servicio; solo se
// consulta para resolver existencia y nombre, y se le propaga la imagen desde stock).
// Propio distingue el catálogo secundario de productos propios del principal.
type Producto struct {
	Codigo    int64
	Nombre    string
	Unidad    string
	Marca     string
	ImagenURL string
	Propio    bool
}
