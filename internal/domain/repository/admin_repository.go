package repository

import "context"

// TablaRespaldo contenido crudo de una tabla para el respaldo admin.
type TablaRespaldo struct {
	Nombre   string
	Columnas []string
	Filas    [][]any
}

// AdminRepository operaciones administrativas a nivel de tabla. Son
// las únicas operaciones del sistema que leen tablas completas o
// borran filas de verdad; el handler las restringe al rol admin.
type AdminRepository interface {
	// LeerTabla devuelve todas las filas de una tabla permitida.
	LeerTabla(ctx context.Context, nombre string) (*TablaRespaldo, error)
	// VaciarTabla borra TODAS las filas de una tabla permitida y
	// devuelve cuántas eliminó. Borrado duro, irreversible.
	VaciarTabla(ctx context.Context, nombre string) (int64, error)
	// TablasPermitidas lista los nombres aceptados por las otras dos.
	TablasPermitidas() []string
}
