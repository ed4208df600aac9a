package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// ConsolidacionUseCase orquesta el ciclo de vida de una consolidación:
// resolver celdas derivadas, calcular totales, persistir y auditar.
// El desbalance no bloquea el guardado: se persiste con balanceado =
// false y la interfaz lo muestra como advertencia.
type ConsolidacionUseCase struct {
	txRunner    TxRunner
	consRepo    repository.ConsolidacionRepository
	clienteRepo repository.ClienteRepository
}

// NewConsolidacionUseCase construye el caso de uso.
func NewConsolidacionUseCase(txRunner TxRunner, consRepo repository.ConsolidacionRepository, clienteRepo repository.ClienteRepository) *ConsolidacionUseCase {
	return &ConsolidacionUseCase{txRunner: txRunner, consRepo: consRepo, clienteRepo: clienteRepo}
}

// Previsualizar resuelve derivadas y totales sin persistir: respaldo
// del cálculo en vivo que la interfaz hace mientras el usuario digita.
func (uc *ConsolidacionUseCase) Previsualizar(ctx context.Context, clienteID string, cuentas map[string]dto.Importe) (*dto.ConsolidacionResponse, error) {
	cliente, err := uc.clienteActivo(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	vector, totales, err := resolverVector(cuentas, cliente.TipoNegocio)
	if err != nil {
		return nil, err
	}
	return &dto.ConsolidacionResponse{
		ClienteID:  cliente.ID,
		Tipo:       string(cliente.TipoNegocio),
		Cuentas:    dto.CuentasPlanas(vector, cliente.TipoNegocio),
		TotalDebe:  totales.TotalDebe,
		TotalHaber: totales.TotalHaber,
		Diferencia: totales.Diferencia,
		Balanceado: totales.Balanceado,
	}, nil
}

// Create valida el período y el esquema, resuelve el vector completo y
// persiste consolidación + entrada de bitácora en una sola transacción.
func (uc *ConsolidacionUseCase) Create(ctx context.Context, usuarioID string, in dto.CrearConsolidacionRequest) (*dto.ConsolidacionResponse, error) {
	inicio, fin, err := parsearPeriodo(in.FechaInicio, in.FechaFin)
	if err != nil {
		return nil, err
	}
	cliente, err := uc.clienteActivo(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	vector, totales, err := resolverVector(in.Cuentas, cliente.TipoNegocio)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cons := &entity.Consolidacion{
		ID:            uuid.New().String(),
		ClienteID:     cliente.ID,
		UsuarioID:     usuarioID,
		Tipo:          cliente.TipoNegocio,
		FechaInicio:   inicio,
		FechaFin:      fin,
		Cuentas:       vector,
		TotalDebe:     totales.TotalDebe,
		TotalHaber:    totales.TotalHaber,
		Diferencia:    totales.Diferencia,
		Balanceado:    totales.Balanceado,
		Observaciones: in.Observaciones,
		Activo:        true,
		FechaCreacion: now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.Run(ctx, func(consRepo repository.ConsolidacionRepository, bitacoraRepo repository.BitacoraRepository) error {
		if err := consRepo.Create(ctx, cons); err != nil {
			return err
		}
		return bitacoraRepo.Create(ctx, &entity.Bitacora{
			ID:        uuid.New().String(),
			UsuarioID: usuarioID,
			Accion:    entity.AccionCrear,
			Entidad:   "consolidacion",
			EntidadID: cons.ID,
			Detalle:   fmt.Sprintf("%s %s a %s", cons.Tipo, in.FechaInicio, in.FechaFin),
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toConsolidacionResponse(cons), nil
}

// GetByID busca por ID. Si tipo viene vacío prueba ambas tablas.
func (uc *ConsolidacionUseCase) GetByID(ctx context.Context, id string, tipo ledger.Tipo) (*dto.ConsolidacionResponse, error) {
	cons, err := uc.buscar(ctx, id, tipo)
	if err != nil || cons == nil {
		return nil, err
	}
	return toConsolidacionResponse(cons), nil
}

// List lista consolidaciones activas con filtros; cuando no se indica
// tipo, el repositorio consulta ambas tablas y mezcla por fecha de
// creación descendente.
func (uc *ConsolidacionUseCase) List(ctx context.Context, f repository.FiltroConsolidaciones) (*dto.ConsolidacionListResponse, error) {
	list, err := uc.consRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConsolidacionResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toConsolidacionResponse(c))
	}
	return &dto.ConsolidacionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// Update reemplaza el vector de cuentas completo, recalcula derivadas
// y totales, y audita. Cliente, tipo y período no cambian.
func (uc *ConsolidacionUseCase) Update(ctx context.Context, usuarioID, id string, tipo ledger.Tipo, in dto.ActualizarConsolidacionRequest) (*dto.ConsolidacionResponse, error) {
	cons, err := uc.buscar(ctx, id, tipo)
	if err != nil || cons == nil {
		return nil, err
	}
	vector, totales, err := resolverVector(in.Cuentas, cons.Tipo)
	if err != nil {
		return nil, err
	}
	cons.Cuentas = vector
	cons.TotalDebe = totales.TotalDebe
	cons.TotalHaber = totales.TotalHaber
	cons.Diferencia = totales.Diferencia
	cons.Balanceado = totales.Balanceado
	if in.Observaciones != nil {
		cons.Observaciones = *in.Observaciones
	}
	cons.UpdatedAt = time.Now()

	err = uc.txRunner.Run(ctx, func(consRepo repository.ConsolidacionRepository, bitacoraRepo repository.BitacoraRepository) error {
		if err := consRepo.Update(ctx, cons); err != nil {
			return err
		}
		return bitacoraRepo.Create(ctx, &entity.Bitacora{
			ID:        uuid.New().String(),
			UsuarioID: usuarioID,
			Accion:    entity.AccionActualizar,
			Entidad:   "consolidacion",
			EntidadID: cons.ID,
			CreatedAt: cons.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return toConsolidacionResponse(cons), nil
}

// SoftDelete marca activo = false y audita; nunca borra la fila.
func (uc *ConsolidacionUseCase) SoftDelete(ctx context.Context, usuarioID, id string, tipo ledger.Tipo) error {
	cons, err := uc.buscar(ctx, id, tipo)
	if err != nil {
		return err
	}
	if cons == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.Run(ctx, func(consRepo repository.ConsolidacionRepository, bitacoraRepo repository.BitacoraRepository) error {
		if err := consRepo.SoftDelete(ctx, cons.ID, cons.Tipo); err != nil {
			return err
		}
		return bitacoraRepo.Create(ctx, &entity.Bitacora{
			ID:        uuid.New().String(),
			UsuarioID: usuarioID,
			Accion:    entity.AccionEliminar,
			Entidad:   "consolidacion",
			EntidadID: cons.ID,
			CreatedAt: time.Now(),
		})
	})
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (uc *ConsolidacionUseCase) clienteActivo(ctx context.Context, clienteID string) (*entity.Cliente, error) {
	cliente, err := uc.clienteRepo.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	if !cliente.Activo {
		return nil, domain.ErrClienteInactivo
	}
	return cliente, nil
}

func (uc *ConsolidacionUseCase) buscar(ctx context.Context, id string, tipo ledger.Tipo) (*entity.Consolidacion, error) {
	if tipo != "" {
		if !tipo.Valida() {
			return nil, domain.ErrTipoInvalido
		}
		return uc.consRepo.GetByID(ctx, id, tipo)
	}
	cons, err := uc.consRepo.GetByID(ctx, id, ledger.TipoGenerales)
	if err != nil || cons != nil {
		return cons, err
	}
	return uc.consRepo.GetByID(ctx, id, ledger.TipoHoteles)
}

// resolverVector convierte el mapa plano, resuelve derivadas y totales.
// Un error de esquema (clave desconocida) se propaga sin suavizar.
func resolverVector(cuentas map[string]dto.Importe, tipo ledger.Tipo) (ledger.Vector, ledger.Totales, error) {
	entrada, err := dto.VectorDesdeCuentas(cuentas)
	if err != nil {
		return nil, ledger.Totales{}, err
	}
	vector, err := ledger.Calcular(entrada, tipo)
	if err != nil {
		return nil, ledger.Totales{}, err
	}
	return vector, ledger.CalcularTotales(vector, tipo), nil
}

func parsearPeriodo(desde, hasta string) (time.Time, time.Time, error) {
	inicio, err := time.Parse(formatoFecha, desde)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha_inicio %q", domain.ErrInvalidInput, desde)
	}
	fin, err := time.Parse(formatoFecha, hasta)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha_fin %q", domain.ErrInvalidInput, hasta)
	}
	if inicio.After(fin) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fecha_inicio posterior a fecha_fin", domain.ErrInvalidInput)
	}
	return inicio, fin, nil
}

func toConsolidacionResponse(c *entity.Consolidacion) *dto.ConsolidacionResponse {
	if c == nil {
		return nil
	}
	return &dto.ConsolidacionResponse{
		ID:            c.ID,
		ClienteID:     c.ClienteID,
		UsuarioID:     c.UsuarioID,
		Tipo:          string(c.Tipo),
		FechaInicio:   c.FechaInicio.Format(formatoFecha),
		FechaFin:      c.FechaFin.Format(formatoFecha),
		Cuentas:       dto.CuentasPlanas(c.Cuentas, c.Tipo),
		TotalDebe:     c.TotalDebe,
		TotalHaber:    c.TotalHaber,
		Diferencia:    c.Diferencia,
		Balanceado:    c.Balanceado,
		Observaciones: c.Observaciones,
		FechaCreacion: c.FechaCreacion,
		UpdatedAt:     c.UpdatedAt,
	}
}
