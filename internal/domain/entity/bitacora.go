package entity

import "time"

// Acciones registradas en la bitácora.
const (
	AccionCrear      = "CREAR"
	AccionActualizar = "ACTUALIZAR"
	AccionEliminar   = "ELIMINAR"
	AccionRespaldar  = "RESPALDAR"
	AccionVaciar     = "VACIAR"
	AccionLogin      = "LOGIN"
)

// Bitacora entrada del registro de auditoría: quién hizo qué y sobre
// qué entidad. Solo se inserta, nunca se edita.
type Bitacora struct {
	ID        string
	UsuarioID string
	Accion    string
	Entidad   string // consolidacion, cliente, usuario, tabla
	EntidadID string
	Detalle   string
	CreatedAt time.Time
}
