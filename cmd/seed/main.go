// seed crea el esquema de la base de datos y carga datos de demostración:
// un usuario admin, catálogo mínimo y stock inicial en dos sucursales.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que el API (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ferreinv/ferreteria-api/internal/infrastructure/postgres"
	"github.com/ferreinv/ferreteria-api/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS productos (
    codigo      BIGINT PRIMARY KEY,
    nombre      TEXT NOT NULL,
    unidad      TEXT NOT NULL DEFAULT '',
    marca       TEXT NOT NULL DEFAULT '',
    imagen_url  TEXT
);

CREATE TABLE IF NOT EXISTS productos_propios (
    codigo      BIGINT PRIMARY KEY,
    nombre      TEXT NOT NULL,
    unidad      TEXT NOT NULL DEFAULT '',
    marca       TEXT NOT NULL DEFAULT '',
    imagen_url  TEXT
);

CREATE TABLE IF NOT EXISTS stock (
    id                     UUID PRIMARY KEY,
    codigo_producto        BIGINT NOT NULL,
    sucursal_nombre        TEXT,
    sucursal_direccion     TEXT,
    clave_sucursal         TEXT NOT NULL DEFAULT '',
    cantidad               NUMERIC(14,3) NOT NULL CHECK (cantidad > 0),
    cantidad_minima        NUMERIC(14,3),
    precios_personalizados JSONB,
    created_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at             TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (codigo_producto, clave_sucursal)
);

CREATE TABLE IF NOT EXISTS registros_inventario (
    id              UUID PRIMARY KEY,
    codigo_producto BIGINT NOT NULL,
    cantidad        NUMERIC(14,3) NOT NULL,
    tipo            TEXT NOT NULL,
    motivo          TEXT NOT NULL,
    usuario         TEXT NOT NULL,
    fecha           TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_registros_fecha ON registros_inventario (fecha DESC);

CREATE TABLE IF NOT EXISTS traslados (
    id                UUID PRIMARY KEY,
    origen_nombre     TEXT NOT NULL DEFAULT '',
    origen_direccion  TEXT NOT NULL DEFAULT '',
    destino_nombre    TEXT NOT NULL DEFAULT '',
    destino_direccion TEXT NOT NULL DEFAULT '',
    fecha             TIMESTAMPTZ NOT NULL DEFAULT now(),
    notas             TEXT NOT NULL DEFAULT '',
    estado            TEXT NOT NULL,
    usuario           TEXT NOT NULL,
    items             JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_traslados_fecha ON traslados (fecha DESC);

CREATE TABLE IF NOT EXISTS recetas (
    id             UUID PRIMARY KEY,
    nombre         TEXT NOT NULL UNIQUE,
    codigo_padre   BIGINT NOT NULL,
    cantidad_padre NUMERIC(14,3) NOT NULL CHECK (cantidad_padre > 0),
    codigo_hijo    BIGINT NOT NULL,
    cantidad_hijo  NUMERIC(14,3) NOT NULL CHECK (cantidad_hijo > 0),
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS registros_recetas (
    id            UUID PRIMARY KEY,
    accion        TEXT NOT NULL,
    nombre_receta TEXT NOT NULL,
    usuario       TEXT NOT NULL,
    fecha         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS usuarios (
    id              UUID PRIMARY KEY,
    nombre          TEXT NOT NULL,
    email           TEXT NOT NULL UNIQUE,
    hash_contrasena TEXT NOT NULL,
    rol             TEXT NOT NULL,
    created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		fmt.Fprintf(os.Stderr, "crear esquema: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("esquema creado")

	// Usuario admin de demostración (password: admin123)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO usuarios (id, nombre, email, hash_contrasena, rol)
		VALUES ($1, 'Administrador', 'admin@ferreteria.local', $2, 'admin')
		ON CONFLICT (email) DO NOTHING`, uuid.New().String(), string(hash))
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed usuario: %v\n", err)
		os.Exit(1)
	}

	// Catálogo mínimo
	productos := []struct {
		codigo int64
		nombre string
		unidad string
		marca  string
	}{
		{770001, "Cemento gris 50kg", "saco", "Argos"},
		{770002, "Varilla corrugada 3/8", "unidad", "Diaco"},
		{770003, "Pintura blanca tipo 1", "galón", "Pintuco"},
		{770004, "Pintura blanca tipo 1", "cuñete", "Pintuco"},
	}
	for _, p := range productos {
		_, err = pool.Exec(ctx, `
			INSERT INTO productos (codigo, nombre, unidad, marca)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (codigo) DO NOTHING`, p.codigo, p.nombre, p.unidad, p.marca)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed producto %d: %v\n", p.codigo, err)
			os.Exit(1)
		}
	}

	// Stock inicial: bodega principal y una sucursal
	stocks := []struct {
		codigo    int64
		nombre    string
		direccion string
		clave     string
		cantidad  string
	}{
		{770001, "Principal", "Calle 10 #5-20", "principal|calle 10 #5-20", "120"},
		{770002, "Principal", "Calle 10 #5-20", "principal|calle 10 #5-20", "300"},
		{770004, "Principal", "Calle 10 #5-20", "principal|calle 10 #5-20", "10"},
		{770001, "Norte", "Av 30 #45-12", "norte|av 30 #45-12", "40"},
	}
	for _, s := range stocks {
		_, err = pool.Exec(ctx, `
			INSERT INTO stock (id, codigo_producto, sucursal_nombre, sucursal_direccion, clave_sucursal, cantidad)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (codigo_producto, clave_sucursal) DO NOTHING`,
			uuid.New().String(), s.codigo, s.nombre, s.direccion, s.clave, s.cantidad)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed stock %d: %v\n", s.codigo, err)
			os.Exit(1)
		}
	}

	fmt.Println("datos de demostración cargados")
}
