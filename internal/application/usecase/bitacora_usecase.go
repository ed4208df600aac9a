package usecase

import (
	"context"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

// BitacoraUseCase consulta del registro de auditoría (solo lectura;
// las escrituras las hacen los demás casos de uso).
type BitacoraUseCase struct {
	repo repository.BitacoraRepository
}

// NewBitacoraUseCase construye el caso de uso.
func NewBitacoraUseCase(repo repository.BitacoraRepository) *BitacoraUseCase {
	return &BitacoraUseCase{repo: repo}
}

// List lista entradas de bitácora, más recientes primero.
func (uc *BitacoraUseCase) List(ctx context.Context, limit, offset int) (*dto.BitacoraListResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BitacoraResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBitacoraResponse(b))
	}
	return &dto.BitacoraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toBitacoraResponse(b *entity.Bitacora) dto.BitacoraResponse {
	return dto.BitacoraResponse{
		ID:        b.ID,
		UsuarioID: b.UsuarioID,
		Accion:    b.Accion,
		Entidad:   b.Entidad,
		EntidadID: b.EntidadID,
		Detalle:   b.Detalle,
		CreatedAt: b.CreatedAt,
	}
}
