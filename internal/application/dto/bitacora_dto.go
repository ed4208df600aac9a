package dto

import "time"

// BitacoraResponse entrada de auditoría en respuestas.
type BitacoraResponse struct {
	ID        string    `json:"id"`
	UsuarioID string    `json:"usuario_id"`
	Accion    string    `json:"accion"`
	Entidad   string    `json:"entidad"`
	EntidadID string    `json:"entidad_id,omitempty"`
	Detalle   string    `json:"detalle,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// BitacoraListResponse listado paginado de auditoría.
type BitacoraListResponse struct {
	Items []BitacoraResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// VaciarTablaResponse resultado del vaciado admin de una tabla.
type VaciarTablaResponse struct {
	Tabla      string `json:"tabla"`
	Eliminadas int64  `json:"eliminadas"`
}
