package usecase

import (
	"context"

	"github.com/contasys/consolida-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye
// los repos de consolidaciones y bitácora, para que el registro y su
// entrada de auditoría se confirmen (o reviertan) juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		consRepo repository.ConsolidacionRepository,
		bitacoraRepo repository.BitacoraRepository,
	) error) error
}
