package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/logger"
)

// ErrModuleExists is returned when a module code already exists in its stream table.
var ErrModuleExists = errors.New("module already exists")

// ModuleRepository reads the four fixed per-stream module tables. The table
// name always comes from models.StreamTables, never from raw input.
type ModuleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(db *pgxpool.Pool) *ModuleRepository {
	return &ModuleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ListStreamModules retrieves the modules of one stream table.
func (r *ModuleRepository) ListStreamModules(ctx context.Context, table string) ([]*models.Module, error) {
	sql, args, err := r.sb.Select("module_code", "module_name").
		From(table).
		OrderBy("module_code ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building list modules SQL")
		return nil, fmt.Errorf("failed to build list modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing list modules query")
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := []*models.Module{}
	for rows.Next() {
		module := &models.Module{}
		if err := rows.Scan(&module.Code, &module.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning module row")
			return nil, fmt.Errorf("error scanning module row: %w", err)
		}
		modules = append(modules, module)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating module rows")
		return nil, fmt.Errorf("error iterating module rows: %w", err)
	}

	return modules, nil
}

// CreateModule inserts a module into one stream table.
func (r *ModuleRepository) CreateModule(ctx context.Context, table string, module *models.Module) error {
	sql, args, err := r.sb.Insert(table).
		Columns("module_code", "module_name").
		Values(module.Code, module.Name).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building create module SQL")
		return fmt.Errorf("failed to build create module query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isDuplicateKeyError(err) {
			return ErrModuleExists
		}
		logger.Error().Err(err).Str("table", table).Msg("Error executing create module query")
		return fmt.Errorf("error creating module: %w", err)
	}

	return nil
}
