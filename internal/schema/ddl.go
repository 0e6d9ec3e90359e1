// Package schema holds the TermoFlexPro DDL for every supported engine and
// the migrator that applies it.
package schema

import (
	"strings"

	"github.com/termoflexpro/termoflex-store/internal/database"
)

// Tables in dependency order, parents first.
var Tables = []string{
	"categorias",
	"usuarios",
	"proveedores",
	"materiales",
	"productos",
	"sensores",
	"pruebas",
	"ventas",
	"fabricacion",
	"producto_material",
}

// The table DDL is written once with {{...}} placeholders that each dialect
// fills in.
var createTables = []string{
	`CREATE TABLE IF NOT EXISTS categorias (
    id          {{pk}},
    nombre      VARCHAR(100) NOT NULL,
    descripcion TEXT,
    CONSTRAINT categorias_nombre_key UNIQUE (nombre)
)`,
	`CREATE TABLE IF NOT EXISTS usuarios (
    id             {{pk}},
    nombre         VARCHAR(100) NOT NULL,
    email          VARCHAR(150) NOT NULL,
    telefono       VARCHAR(20),
    direccion      TEXT,
    estado         VARCHAR(10) NOT NULL DEFAULT 'active',
    fecha_registro {{timestamp}} NOT NULL DEFAULT {{now}},
    CONSTRAINT usuarios_email_key UNIQUE (email),
    CONSTRAINT usuarios_estado_check CHECK (estado IN ('active', 'inactive'))
)`,
	`CREATE TABLE IF NOT EXISTS proveedores (
    id             {{pk}},
    nombre         VARCHAR(100) NOT NULL,
    contacto       VARCHAR(100),
    direccion      TEXT,
    estado         VARCHAR(10) NOT NULL DEFAULT 'active',
    fecha_registro {{timestamp}} NOT NULL DEFAULT {{now}},
    CONSTRAINT proveedores_nombre_key UNIQUE (nombre),
    CONSTRAINT proveedores_estado_check CHECK (estado IN ('active', 'inactive'))
)`,
	`CREATE TABLE IF NOT EXISTS materiales (
    id                   {{pk}},
    nombre               VARCHAR(100) NOT NULL,
    descripcion          TEXT,
    estado               VARCHAR(10) NOT NULL DEFAULT 'active',
    ultima_actualizacion {{timestamp}} NOT NULL DEFAULT {{now}},
    CONSTRAINT materiales_nombre_key UNIQUE (nombre),
    CONSTRAINT materiales_estado_check CHECK (estado IN ('active', 'inactive'))
)`,
	`CREATE TABLE IF NOT EXISTS productos (
    id                   {{pk}},
    nombre               VARCHAR(100) NOT NULL,
    descripcion          TEXT,
    categoria_id         {{ref}},
    precio               DECIMAL(10,2) NOT NULL,
    stock                INTEGER NOT NULL DEFAULT 0,
    estado               VARCHAR(10) NOT NULL DEFAULT 'active',
    fecha_lanzamiento    DATE,
    ultima_actualizacion {{timestamp}} NOT NULL DEFAULT {{now}},
    CONSTRAINT productos_nombre_key UNIQUE (nombre),
    CONSTRAINT productos_precio_check CHECK (precio > 0),
    CONSTRAINT productos_stock_check CHECK (stock >= 0),
    CONSTRAINT productos_estado_check CHECK (estado IN ('active', 'inactive')),
    CONSTRAINT productos_categoria_id_fkey FOREIGN KEY (categoria_id)
        REFERENCES categorias (id) ON DELETE SET NULL
)`,
	`CREATE TABLE IF NOT EXISTS sensores (
    id               {{pk}},
    tipo             VARCHAR(50) NOT NULL,
    especificaciones TEXT,
    estado           VARCHAR(10) NOT NULL DEFAULT 'active',
    producto_id      {{ref}} NOT NULL,
    CONSTRAINT sensores_estado_check CHECK (estado IN ('active', 'inactive')),
    CONSTRAINT sensores_producto_id_fkey FOREIGN KEY (producto_id)
        REFERENCES productos (id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS pruebas (
    id          {{pk}},
    producto_id {{ref}} NOT NULL,
    descripcion TEXT,
    resultados  TEXT,
    estado      VARCHAR(10) NOT NULL DEFAULT 'pending',
    fecha       DATE NOT NULL,
    CONSTRAINT pruebas_estado_check CHECK (estado IN ('pending', 'completed', 'failed')),
    CONSTRAINT pruebas_producto_id_fkey FOREIGN KEY (producto_id)
        REFERENCES productos (id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS ventas (
    id          {{pk}},
    usuario_id  {{ref}} NOT NULL,
    producto_id {{ref}} NOT NULL,
    cantidad    INTEGER NOT NULL,
    fecha       {{timestamp}} NOT NULL DEFAULT {{now}},
    total       DECIMAL(10,2) NOT NULL,
    estado      VARCHAR(10) NOT NULL DEFAULT 'pending',
    CONSTRAINT ventas_cantidad_check CHECK (cantidad > 0),
    CONSTRAINT ventas_total_check CHECK (total >= 0),
    CONSTRAINT ventas_estado_check CHECK (estado IN ('completed', 'pending', 'cancelled')),
    CONSTRAINT ventas_usuario_id_fkey FOREIGN KEY (usuario_id)
        REFERENCES usuarios (id) ON DELETE CASCADE,
    CONSTRAINT ventas_producto_id_fkey FOREIGN KEY (producto_id)
        REFERENCES productos (id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS fabricacion (
    id           {{pk}},
    proveedor_id {{ref}} NOT NULL,
    producto_id  {{ref}} NOT NULL,
    cantidad     INTEGER NOT NULL,
    fecha        DATE NOT NULL DEFAULT {{today}},
    CONSTRAINT fabricacion_cantidad_check CHECK (cantidad > 0),
    CONSTRAINT fabricacion_proveedor_id_fkey FOREIGN KEY (proveedor_id)
        REFERENCES proveedores (id) ON DELETE CASCADE,
    CONSTRAINT fabricacion_producto_id_fkey FOREIGN KEY (producto_id)
        REFERENCES productos (id) ON DELETE CASCADE
)`,
	`CREATE TABLE IF NOT EXISTS producto_material (
    producto_id    {{ref}} NOT NULL,
    material_id    {{ref}} NOT NULL,
    cantidad_usada DECIMAL(10,2) NOT NULL,
    CONSTRAINT producto_material_pkey PRIMARY KEY (producto_id, material_id),
    CONSTRAINT producto_material_producto_id_fkey FOREIGN KEY (producto_id)
        REFERENCES productos (id) ON DELETE CASCADE,
    CONSTRAINT producto_material_material_id_fkey FOREIGN KEY (material_id)
        REFERENCES materiales (id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_productos_categoria_id ON productos (categoria_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sensores_producto_id ON sensores (producto_id)`,
	`CREATE INDEX IF NOT EXISTS idx_pruebas_producto_id ON pruebas (producto_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ventas_usuario_id ON ventas (usuario_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ventas_producto_id ON ventas (producto_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fabricacion_proveedor_id ON fabricacion (proveedor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fabricacion_producto_id ON fabricacion (producto_id)`,
	`CREATE INDEX IF NOT EXISTS idx_producto_material_material_id ON producto_material (material_id)`,
}

// ultima_actualizacion never moves backwards, even if the clock does.
var postgresTriggers = []string{
	`CREATE OR REPLACE FUNCTION tocar_ultima_actualizacion() RETURNS TRIGGER AS $$
BEGIN
    NEW.ultima_actualizacion := GREATEST(clock_timestamp(), OLD.ultima_actualizacion);
    RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
	`DROP TRIGGER IF EXISTS productos_ultima_actualizacion ON productos`,
	`CREATE TRIGGER productos_ultima_actualizacion
    BEFORE UPDATE ON productos
    FOR EACH ROW EXECUTE FUNCTION tocar_ultima_actualizacion()`,
	`DROP TRIGGER IF EXISTS materiales_ultima_actualizacion ON materiales`,
	`CREATE TRIGGER materiales_ultima_actualizacion
    BEFORE UPDATE ON materiales
    FOR EACH ROW EXECUTE FUNCTION tocar_ultima_actualizacion()`,
}

// SQLite cannot assign NEW in a BEFORE trigger, so the row is touched again
// after the update. recursive_triggers is off, so this does not re-fire.
var sqliteTriggers = []string{
	`CREATE TRIGGER IF NOT EXISTS productos_ultima_actualizacion
AFTER UPDATE ON productos
FOR EACH ROW
BEGIN
    UPDATE productos
       SET ultima_actualizacion = MAX(strftime('%Y-%m-%d %H:%M:%f', 'now'), OLD.ultima_actualizacion)
     WHERE id = NEW.id;
END`,
	`CREATE TRIGGER IF NOT EXISTS materiales_ultima_actualizacion
AFTER UPDATE ON materiales
FOR EACH ROW
BEGIN
    UPDATE materiales
       SET ultima_actualizacion = MAX(strftime('%Y-%m-%d %H:%M:%f', 'now'), OLD.ultima_actualizacion)
     WHERE id = NEW.id;
END`,
}

var migrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(14) PRIMARY KEY,
    name       VARCHAR(255) NOT NULL,
    applied_at {{timestamp}} NOT NULL DEFAULT {{now}}
)`

var placeholders = map[database.Dialect]*strings.Replacer{
	database.DialectPostgres: strings.NewReplacer(
		"{{pk}}", "BIGSERIAL PRIMARY KEY",
		"{{ref}}", "BIGINT",
		"{{timestamp}}", "TIMESTAMPTZ",
		"{{now}}", "(NOW())",
		"{{today}}", "(CURRENT_DATE)",
	),
	database.DialectSQLite: strings.NewReplacer(
		"{{pk}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
		"{{ref}}", "INTEGER",
		"{{timestamp}}", "DATETIME",
		"{{now}}", "(strftime('%Y-%m-%d %H:%M:%f', 'now'))",
		"{{today}}", "(date('now'))",
	),
}

func render(d database.Dialect, stmts ...string) []string {
	r := placeholders[d]
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = r.Replace(s)
	}
	return out
}

// DDL returns the statements that create the full schema for a dialect, in
// the order they must run.
func DDL(d database.Dialect) []string {
	var stmts []string
	for _, m := range Migrations(d) {
		stmts = append(stmts, m.Statements...)
	}
	return stmts
}

func dropStatements(d database.Dialect) []string {
	stmts := make([]string, 0, len(Tables)+2)
	for i := len(Tables) - 1; i >= 0; i-- {
		stmts = append(stmts, "DROP TABLE IF EXISTS "+Tables[i])
	}
	if d == database.DialectPostgres {
		stmts = append(stmts, "DROP FUNCTION IF EXISTS tocar_ultima_actualizacion()")
	}
	return append(stmts, "DROP TABLE IF EXISTS schema_migrations")
}
