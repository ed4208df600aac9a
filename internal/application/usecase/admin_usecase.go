package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

// RespaldoGenerator arma el libro de respaldo (una hoja por tabla).
type RespaldoGenerator interface {
	Generar(tablas []*repository.TablaRespaldo) ([]byte, error)
}

// AdminUseCase operaciones administrativas: respaldo completo de las
// tablas de datos y vaciado duro de una tabla. Ambas quedan en
// bitácora con el usuario que las ejecutó.
type AdminUseCase struct {
	adminRepo    repository.AdminRepository
	bitacoraRepo repository.BitacoraRepository
	respaldoGen  RespaldoGenerator
}

// NewAdminUseCase construye el caso de uso admin.
func NewAdminUseCase(adminRepo repository.AdminRepository, bitacoraRepo repository.BitacoraRepository, respaldoGen RespaldoGenerator) *AdminUseCase {
	return &AdminUseCase{adminRepo: adminRepo, bitacoraRepo: bitacoraRepo, respaldoGen: respaldoGen}
}

// RespaldarTablas lee todas las tablas permitidas y genera el libro de
// respaldo. Devuelve el binario y el nombre de archivo sugerido.
func (uc *AdminUseCase) RespaldarTablas(ctx context.Context, usuarioID string) ([]byte, string, error) {
	nombres := uc.adminRepo.TablasPermitidas()
	tablas := make([]*repository.TablaRespaldo, 0, len(nombres))
	for _, n := range nombres {
		t, err := uc.adminRepo.LeerTabla(ctx, n)
		if err != nil {
			return nil, "", fmt.Errorf("leyendo tabla %s: %w", n, err)
		}
		tablas = append(tablas, t)
	}
	data, err := uc.respaldoGen.Generar(tablas)
	if err != nil {
		return nil, "", err
	}
	uc.auditar(ctx, usuarioID, entity.AccionRespaldar, "", fmt.Sprintf("%d tablas", len(tablas)))
	filename := fmt.Sprintf("respaldo_%s.xlsx", time.Now().Format("20060102_150405"))
	return data, filename, nil
}

// VaciarTabla borra todas las filas de una tabla permitida. La tabla
// se valida contra la lista blanca antes de tocar nada.
func (uc *AdminUseCase) VaciarTabla(ctx context.Context, usuarioID, tabla string) (*dto.VaciarTablaResponse, error) {
	permitida := false
	for _, n := range uc.adminRepo.TablasPermitidas() {
		if n == tabla {
			permitida = true
			break
		}
	}
	if !permitida {
		return nil, fmt.Errorf("%w: tabla %q no permitida", domain.ErrInvalidInput, tabla)
	}
	eliminadas, err := uc.adminRepo.VaciarTabla(ctx, tabla)
	if err != nil {
		return nil, err
	}
	uc.auditar(ctx, usuarioID, entity.AccionVaciar, tabla, fmt.Sprintf("%d filas", eliminadas))
	return &dto.VaciarTablaResponse{Tabla: tabla, Eliminadas: eliminadas}, nil
}

func (uc *AdminUseCase) auditar(ctx context.Context, usuarioID, accion, entidadID, detalle string) {
	_ = uc.bitacoraRepo.Create(ctx, &entity.Bitacora{
		ID:        uuid.New().String(),
		UsuarioID: usuarioID,
		Accion:    accion,
		Entidad:   "admin",
		EntidadID: entidadID,
		Detalle:   detalle,
		CreatedAt: time.Now(),
	})
}
