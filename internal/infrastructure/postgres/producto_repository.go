package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ferreinv/ferreteria-api/internal/domain/entity"
	"github.com/ferreinv/ferreteria-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo acceso de lectura al catálogo (tablas productos y productos_propios).
// Usable con pool o tx (Querier).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// GetPorCodigo busca en el catálogo principal; nil si no existe.
func (r *ProductoRepo) GetPorCodigo(codigo int64) (*entity.Producto, error) {
	return r.getDeTabla("productos", codigo, false)
}

// GetPropioPorCodigo busca en el catálogo de productos propios; nil si no existe.
func (r *ProductoRepo) GetPropioPorCodigo(codigo int64) (*entity.Producto, error) {
	return r.getDeTabla("productos_propios", codigo, true)
}

func (r *ProductoRepo) getDeTabla(tabla string, codigo int64, propio bool) (*entity.Producto, error) {
	query := fmt.Sprintf(`SELECT codigo, nombre, unidad, marca, COALESCE(imagen_url, '') FROM %s WHERE codigo = $1`, tabla)
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, codigo).Scan(
		&p.Codigo, &p.Nombre, &p.Unidad, &p.Marca, &p.ImagenURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	p.Propio = propio
	return &p, nil
}

// GetPorCodigos resuelve varios códigos contra ambos catálogos. El principal tiene
// prioridad cuando un código aparece en los dos.
func (r *ProductoRepo) GetPorCodigos(codigos []int64) (map[int64]*entity.Producto, error) {
	out := make(map[int64]*entity.Producto, len(codigos))
	if len(codigos) == 0 {
		return out, nil
	}
	for _, catalogo := range []struct {
		tabla  string
		propio bool
	}{
		{"productos_propios", true},
		{"productos", false},
	} {
		query := fmt.Sprintf(`SELECT codigo, nombre, unidad, marca, COALESCE(imagen_url, '') FROM %s WHERE codigo = ANY($1)`, catalogo.tabla)
		rows, err := r.q.Query(context.Background(), query, codigos)
		if err != nil {
			return nil, fmt.Errorf("listar productos: %w", err)
		}
		for rows.Next() {
			var p entity.Producto
			if err := rows.Scan(&p.Codigo, &p.Nombre, &p.Unidad, &p.Marca, &p.ImagenURL); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan producto: %w", err)
			}
			p.Propio = catalogo.propio
			out[p.Codigo] = &p
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
	}
	return out, nil
}

// ActualizarImagen fija la imagen del producto en el catálogo que lo contenga
// (principal primero, luego propios). Sin efecto si el código no está en ninguno.
func (r *ProductoRepo) ActualizarImagen(codigo int64, imagenURL string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE productos SET imagen_url = $2 WHERE codigo = $1`, codigo, imagenURL)
	if err != nil {
		return fmt.Errorf("actualizar imagen producto: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	if _, err := r.q.Exec(context.Background(),
		`UPDATE productos_propios SET imagen_url = $2 WHERE codigo = $1`, codigo, imagenURL); err != nil {
		return fmt.Errorf("actualizar imagen producto propio: %w", err)
	}
	return nil
}
