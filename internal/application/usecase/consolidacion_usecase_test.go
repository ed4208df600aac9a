package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contasys/consolida-api/internal/application/dto"
	"github.com/contasys/consolida-api/internal/application/usecase"
	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error {
	f.clientes[c.ID] = c
	return nil
}
func (f *fakeClienteRepo) GetByID(_ context.Context, id string) (*entity.Cliente, error) {
	return f.clientes[id], nil
}
func (f *fakeClienteRepo) List(_ context.Context, _, _ int) ([]*entity.Cliente, error) {
	return nil, nil
}
func (f *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) error { return nil }
func (f *fakeClienteRepo) SoftDelete(_ context.Context, id string) error     { return nil }

type fakeConsRepo struct {
	registros map[string]*entity.Consolidacion
}

func (f *fakeConsRepo) Create(_ context.Context, c *entity.Consolidacion) error {
	f.registros[c.ID] = c
	return nil
}
func (f *fakeConsRepo) GetByID(_ context.Context, id string, tipo ledger.Tipo) (*entity.Consolidacion, error) {
	c := f.registros[id]
	if c == nil || c.Tipo != tipo {
		return nil, nil
	}
	return c, nil
}
func (f *fakeConsRepo) List(_ context.Context, _ repository.FiltroConsolidaciones) ([]*entity.Consolidacion, error) {
	var out []*entity.Consolidacion
	for _, c := range f.registros {
		out = append(out, c)
	}
	return out, nil
}
func (f *fakeConsRepo) Update(_ context.Context, c *entity.Consolidacion) error {
	f.registros[c.ID] = c
	return nil
}
func (f *fakeConsRepo) SoftDelete(_ context.Context, id string, _ ledger.Tipo) error {
	c := f.registros[id]
	if c == nil {
		return domain.ErrNotFound
	}
	c.Activo = false
	return nil
}

type fakeBitacoraRepo struct {
	entradas []*entity.Bitacora
}

func (f *fakeBitacoraRepo) Create(_ context.Context, b *entity.Bitacora) error {
	f.entradas = append(f.entradas, b)
	return nil
}
func (f *fakeBitacoraRepo) List(_ context.Context, _, _ int) ([]*entity.Bitacora, error) {
	return f.entradas, nil
}

// fakeTxRunner ejecuta el callback sin transacción real.
type fakeTxRunner struct {
	cons *fakeConsRepo
	bit  *fakeBitacoraRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.ConsolidacionRepository, repository.BitacoraRepository) error) error {
	return fn(f.cons, f.bit)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	fxClienteID = "11111111-1111-1111-1111-111111111111"
	fxHotelID   = "22222222-2222-2222-2222-222222222222"
	fxUserID    = "33333333-3333-3333-3333-333333333333"
)

func newFixture() (*usecase.ConsolidacionUseCase, *fakeConsRepo, *fakeBitacoraRepo) {
	clientes := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		fxClienteID: {ID: fxClienteID, Nombre: "Comercial La Ceiba", TipoNegocio: ledger.TipoGenerales, Activo: true},
		fxHotelID:   {ID: fxHotelID, Nombre: "Hotel Copán", TipoNegocio: ledger.TipoHoteles, Activo: true},
	}}
	cons := &fakeConsRepo{registros: map[string]*entity.Consolidacion{}}
	bit := &fakeBitacoraRepo{}
	uc := usecase.NewConsolidacionUseCase(&fakeTxRunner{cons: cons, bit: bit}, cons, clientes)
	return uc, cons, bit
}

func importe(v int64) dto.Importe {
	return dto.Importe{Decimal: decimal.NewFromInt(v)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CalculaDerivadasYTotales(t *testing.T) {
	uc, cons, bit := newFixture()

	out, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   fxClienteID,
		FechaInicio: "2025-01-01",
		FechaFin:    "2025-01-31",
		Cuentas: map[string]dto.Importe{
			"compras_gravadas_15_debe": importe(1000),
			"ventas_gravadas_15_haber": importe(500),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Derivadas: ISV 15 compras = 150 (debe), ISV 15 ventas = 75 (haber),
	// Caja y Bancos cierra ambos lados.
	assert.Equal(t, "150", out.Cuentas["isv_15_compras_debe"].String())
	assert.Equal(t, "75", out.Cuentas["isv_15_ventas_haber"].String())
	assert.Equal(t, "575", out.Cuentas["caja_bancos_debe"].String())
	assert.Equal(t, "1150", out.Cuentas["caja_bancos_haber"].String())

	assert.Equal(t, "1725", out.TotalDebe.String())
	assert.Equal(t, "1725", out.TotalHaber.String())
	assert.True(t, out.Balanceado, "con Caja y Bancos derivada el libro cierra")

	// Persistencia + auditoría en la misma transacción
	assert.Len(t, cons.registros, 1)
	require.Len(t, bit.entradas, 1)
	assert.Equal(t, entity.AccionCrear, bit.entradas[0].Accion)
	assert.Equal(t, fxUserID, bit.entradas[0].UsuarioID)
}

func TestCreate_HotelesAplicaIST(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   fxHotelID,
		FechaInicio: "2025-02-01",
		FechaFin:    "2025-02-28",
		Cuentas: map[string]dto.Importe{
			"ventas_gravadas_15_haber": importe(1000),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "HOTELES", out.Tipo)
	assert.Equal(t, "40", out.Cuentas["ist_4_haber"].String(), "IST 4% sobre ventas gravadas")
}

func TestCreate_FechasInvertidas_Error(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   fxClienteID,
		FechaInicio: "2025-03-31",
		FechaFin:    "2025-03-01",
		Cuentas:     map[string]dto.Importe{},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ClienteInexistente_Error(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   "99999999-9999-9999-9999-999999999999",
		FechaInicio: "2025-01-01",
		FechaFin:    "2025-01-31",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_ISTEnGenerales_Error(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   fxClienteID,
		FechaInicio: "2025-01-01",
		FechaFin:    "2025-01-31",
		Cuentas: map[string]dto.Importe{
			"ist_4_haber": importe(10),
		},
	})
	assert.ErrorIs(t, err, ledger.ErrEsquema,
		"ist_4 no pertenece al esquema GENERALES y debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / SoftDelete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_RecalculaTodoElVector(t *testing.T) {
	uc, cons, bit := newFixture()

	creado, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   fxClienteID,
		FechaInicio: "2025-01-01",
		FechaFin:    "2025-01-31",
		Cuentas: map[string]dto.Importe{
			"compras_gravadas_15_debe": importe(1000),
		},
	})
	require.NoError(t, err)

	obs := "corrección de digitación"
	out, err := uc.Update(context.Background(), fxUserID, creado.ID, ledger.TipoGenerales, dto.ActualizarConsolidacionRequest{
		Observaciones: &obs,
		Cuentas: map[string]dto.Importe{
			"compras_gravadas_18_debe": importe(2000),
		},
	})
	require.NoError(t, err)

	// El vector anterior se descarta por completo
	assert.Equal(t, "0", out.Cuentas["compras_gravadas_15_debe"].String())
	assert.Equal(t, "360", out.Cuentas["isv_18_compras_debe"].String())
	assert.Equal(t, obs, out.Observaciones)

	guardado := cons.registros[creado.ID]
	assert.True(t, guardado.TotalDebe.Equal(guardado.TotalHaber))
	assert.Len(t, bit.entradas, 2, "create y update quedan en bitácora")
}

func TestSoftDelete_NoExiste_ErrNotFound(t *testing.T) {
	uc, _, _ := newFixture()
	err := uc.SoftDelete(context.Background(), fxUserID, "no-existe", ledger.TipoGenerales)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSoftDelete_MarcaInactivoYAudita(t *testing.T) {
	uc, cons, bit := newFixture()

	creado, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   fxClienteID,
		FechaInicio: "2025-01-01",
		FechaFin:    "2025-01-31",
		Cuentas:     map[string]dto.Importe{},
	})
	require.NoError(t, err)

	require.NoError(t, uc.SoftDelete(context.Background(), fxUserID, creado.ID, ledger.TipoGenerales))
	assert.False(t, cons.registros[creado.ID].Activo)
	assert.Equal(t, entity.AccionEliminar, bit.entradas[len(bit.entradas)-1].Accion)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID sin tipo: búsqueda en ambas tablas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_SinTipoBuscaEnAmbasTablas(t *testing.T) {
	uc, _, _ := newFixture()

	creado, err := uc.Create(context.Background(), fxUserID, dto.CrearConsolidacionRequest{
		ClienteID:   fxHotelID,
		FechaInicio: "2025-01-01",
		FechaFin:    "2025-01-31",
		Cuentas:     map[string]dto.Importe{},
	})
	require.NoError(t, err)

	out, err := uc.GetByID(context.Background(), creado.ID, "")
	require.NoError(t, err)
	require.NotNil(t, out, "sin tipo explícito debe encontrarse en la tabla de hoteles")
	assert.Equal(t, "HOTELES", out.Tipo)
}
