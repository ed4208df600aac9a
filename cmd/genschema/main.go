// genschema genera el script SQL del esquema de base de datos a partir
// del esquema contable del dominio, de modo que las columnas de las
// tablas de consolidaciones siempre coincidan con ledger.Esquema.
//
// Uso: go run ./cmd/genschema
// Escribe: internal/infrastructure/postgres/migrations/001_schema.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/contasys/consolida-api/internal/domain/ledger"
)

func main() {
	moduleRoot := findModuleRoot()
	outDir := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	outPath := filepath.Join(outDir, "001_schema.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Esquema de base de datos del sistema de consolidaciones.\n")
	out.WriteString("-- Generado con go run ./cmd/genschema; no editar a mano las\n")
	out.WriteString("-- columnas de cuentas, salen de ledger.Esquema.\n\n")

	out.WriteString(`CREATE TABLE IF NOT EXISTS usuarios (
    id UUID PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    nombre TEXT NOT NULL,
    rol TEXT NOT NULL DEFAULT 'usuario',
    estado TEXT NOT NULL DEFAULT 'active',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS clientes (
    id UUID PRIMARY KEY,
    nombre TEXT NOT NULL,
    rtn CHAR(14) NOT NULL UNIQUE,
    tipo_negocio TEXT NOT NULL CHECK (tipo_negocio IN ('GENERALES', 'HOTELES')),
    telefono TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT '',
    direccion TEXT NOT NULL DEFAULT '',
    activo BOOLEAN NOT NULL DEFAULT true,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bitacora (
    id UUID PRIMARY KEY,
    usuario_id UUID NOT NULL,
    accion TEXT NOT NULL,
    entidad TEXT NOT NULL,
    entidad_id TEXT NOT NULL DEFAULT '',
    detalle TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_bitacora_created_at ON bitacora (created_at DESC);

`)

	escribirTablaConsolidaciones(out, "consolidaciones_generales", ledger.TipoGenerales)
	escribirTablaConsolidaciones(out, "consolidaciones_hoteles", ledger.TipoHoteles)

	fmt.Printf("Generado %s\n", outPath)
}

// escribirTablaConsolidaciones emite el DDL de una tabla de
// consolidaciones con un par de columnas NUMERIC por cuenta del esquema.
func escribirTablaConsolidaciones(out *os.File, tabla string, tipo ledger.Tipo) {
	fmt.Fprintf(out, "-- %s: %d cuentas del esquema %s\n", tabla, len(ledger.Esquema(tipo)), tipo)
	fmt.Fprintf(out, "CREATE TABLE IF NOT EXISTS %s (\n", tabla)
	out.WriteString("    id UUID PRIMARY KEY,\n")
	out.WriteString("    cliente_id UUID NOT NULL REFERENCES clientes (id),\n")
	out.WriteString("    usuario_id UUID NOT NULL REFERENCES usuarios (id),\n")
	out.WriteString("    fecha_inicio DATE NOT NULL,\n")
	out.WriteString("    fecha_fin DATE NOT NULL,\n")
	for _, c := range ledger.Esquema(tipo) {
		fmt.Fprintf(out, "    %s_debe NUMERIC(18, 2) NOT NULL DEFAULT 0,\n", c.Clave)
		fmt.Fprintf(out, "    %s_haber NUMERIC(18, 2) NOT NULL DEFAULT 0,\n", c.Clave)
	}
	out.WriteString("    total_debe NUMERIC(18, 2) NOT NULL DEFAULT 0,\n")
	out.WriteString("    total_haber NUMERIC(18, 2) NOT NULL DEFAULT 0,\n")
	out.WriteString("    diferencia NUMERIC(18, 2) NOT NULL DEFAULT 0,\n")
	out.WriteString("    balanceado BOOLEAN NOT NULL DEFAULT false,\n")
	out.WriteString("    observaciones TEXT NOT NULL DEFAULT '',\n")
	out.WriteString("    activo BOOLEAN NOT NULL DEFAULT true,\n")
	out.WriteString("    fecha_creacion TIMESTAMPTZ NOT NULL DEFAULT now(),\n")
	out.WriteString("    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()\n")
	out.WriteString(");\n\n")
	fmt.Fprintf(out, "CREATE INDEX IF NOT EXISTS idx_%s_cliente ON %s (cliente_id, fecha_inicio);\n\n", tabla, tabla)
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
