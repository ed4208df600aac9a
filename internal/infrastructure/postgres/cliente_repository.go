package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/contasys/consolida-api/internal/domain"
	"github.com/contasys/consolida-api/internal/domain/entity"
	"github.com/contasys/consolida-api/internal/domain/ledger"
	"github.com/contasys/consolida-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
// List excluye inactivos; GetByID no, para que editar o exportar un
// registro histórico de un cliente dado de baja siga funcionando.
type ClienteRepo struct {
	db Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(db Querier) *ClienteRepo {
	return &ClienteRepo{db: db}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, rtn, tipo_negocio, telefono, email, direccion, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Nombre, c.RTN, string(c.TipoNegocio), c.Telefono, c.Email, c.Direccion,
		c.Activo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, activo o no. Devuelve nil, nil si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id string) (*entity.Cliente, error) {
	query := `
		SELECT id, nombre, rtn, tipo_negocio, telefono, email, direccion, activo, created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	var tipo string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Nombre, &c.RTN, &tipo, &c.Telefono, &c.Email, &c.Direccion,
		&c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by id: %w", err)
	}
	c.TipoNegocio = ledger.Tipo(tipo)
	return &c, nil
}

// List lista clientes activos ordenados por nombre.
func (r *ClienteRepo) List(ctx context.Context, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, nombre, rtn, tipo_negocio, telefono, email, direccion, activo, created_at, updated_at
		FROM clientes WHERE activo = true ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		var tipo string
		if err := rows.Scan(&c.ID, &c.Nombre, &c.RTN, &tipo, &c.Telefono, &c.Email, &c.Direccion, &c.Activo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		c.TipoNegocio = ledger.Tipo(tipo)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos de contacto de un cliente. El tipo de
// negocio no se toca: decide la tabla de sus consolidaciones.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes SET nombre = $2, rtn = $3, telefono = $4, email = $5, direccion = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Nombre, c.RTN, c.Telefono, c.Email, c.Direccion, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// SoftDelete marca el cliente como inactivo.
func (r *ClienteRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE clientes SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
