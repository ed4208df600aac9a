package dto

import "time"

// CrearClienteRequest alta de cliente.
type CrearClienteRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	RTN         string `json:"rtn" validate:"required,len=14,numeric"`
	TipoNegocio string `json:"tipo_negocio" validate:"required,oneof=GENERALES HOTELES"`
	Telefono    string `json:"telefono"`
	Email       string `json:"email" validate:"omitempty,email"`
	Direccion   string `json:"direccion"`
}

// ActualizarClienteRequest actualización parcial (punteros = opcional).
// TipoNegocio no se puede cambiar: decide la tabla de consolidaciones.
type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"`
	RTN       *string `json:"rtn" validate:"omitempty,len=14,numeric"`
	Telefono  *string `json:"telefono"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Direccion *string `json:"direccion"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	RTN         string    `json:"rtn"`
	TipoNegocio string    `json:"tipo_negocio"`
	Telefono    string    `json:"telefono,omitempty"`
	Email       string    `json:"email,omitempty"`
	Direccion   string    `json:"direccion,omitempty"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClienteListResponse listado paginado.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
