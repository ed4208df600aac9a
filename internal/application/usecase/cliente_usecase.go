package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes del despacho.
type ClienteUseCase struct {
	repo         repository.ClienteRepository
	bitacoraRepo repository.BitacoraRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, bitacoraRepo repository.BitacoraRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, bitacoraRepo: bitacoraRepo}
}

// Create crea un nuevo cliente. El tipo de negocio queda fijo: decide
// en qué tabla viven sus consolidaciones.
func (uc *ClienteUseCase) Create(ctx context.Context, usuarioID string, in dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	tipo := ledger.Tipo(in.TipoNegocio)
	if !tipo.Valida() {
		return nil, domain.ErrTipoInvalido
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		RTN:         in.RTN,
		TipoNegocio: tipo,
		Telefono:    in.Telefono,
		Email:       in.Email,
		Direccion:   in.Direccion,
		Activo:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	uc.auditar(ctx, usuarioID, entity.AccionCrear, cliente.ID, "cliente "+cliente.Nombre)
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID. Devuelve nil, nil si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// Update actualiza los datos de contacto de un cliente.
func (uc *ClienteUseCase) Update(ctx context.Context, usuarioID, id string, in dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.RTN != nil {
		cliente.RTN = *in.RTN
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Email != nil {
		cliente.Email = *in.Email
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	uc.auditar(ctx, usuarioID, entity.AccionActualizar, cliente.ID, "cliente "+cliente.Nombre)
	return toClienteResponse(cliente), nil
}

// List lista clientes activos con paginación.
func (uc *ClienteUseCase) List(ctx context.Context, limit, offset int) (*dto.ClienteListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SoftDelete marca el cliente como inactivo; sus consolidaciones no se
// tocan pero dejan de aparecer en los listados combinados.
func (uc *ClienteUseCase) SoftDelete(ctx context.Context, usuarioID, id string) error {
	if err := uc.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	uc.auditar(ctx, usuarioID, entity.AccionEliminar, id, "")
	return nil
}

// auditar registra en bitácora sin bloquear la operación principal.
func (uc *ClienteUseCase) auditar(ctx context.Context, usuarioID, accion, clienteID, detalle string) {
	_ = uc.bitacoraRepo.Create(ctx, &entity.Bitacora{
		ID:        uuid.New().String(),
		UsuarioID: usuarioID,
		Accion:    accion,
		Entidad:   "cliente",
		EntidadID: clienteID,
		Detalle:   detalle,
		CreatedAt: time.Now(),
	})
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		RTN:         c.RTN,
		TipoNegocio: string(c.TipoNegocio),
		Telefono:    c.Telefono,
		Email:       c.Email,
		Direccion:   c.Direccion,
		Activo:      c.Activo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
