package services

import (
	"context"
	"strings"

	"github.com/tumelo/reportal/internal/app/models"
	"github.com/tumelo/reportal/internal/pkg/apperrors"
)

// moduleService implements ModuleService over the module store.
type moduleService struct {
	modules ModuleStore
}

// NewModuleService creates a new ModuleService
func NewModuleService(modules ModuleStore) ModuleService {
	return &moduleService{modules: modules}
}

// ListStreams returns the fixed four-entry stream reference list.
func (s *moduleService) ListStreams() []models.Stream {
	return models.Streams
}

// ListAllModules reads the four per-stream tables sequentially and
// concatenates the rows in memory with a stream label. The four-collection
// shape is deliberate; the streams are not merged into one table.
func (s *moduleService) ListAllModules(ctx context.Context) ([]*models.Module, error) {
	all := []*models.Module{}
	for _, stream := range models.Streams {
		table := models.StreamTables[strings.ToLower(stream.Name)]
		modules, err := s.modules.ListStreamModules(ctx, table)
		if err != nil {
			return nil, err
		}
		for _, m := range modules {
			m.Stream = stream.Name
		}
		all = append(all, modules...)
	}
	return all, nil
}

// ListModulesByStream resolves the stream name through the fixed table lookup.
// An unknown name fails before any query executes.
func (s *moduleService) ListModulesByStream(ctx context.Context, stream string) ([]*models.Module, error) {
	table, ok := models.StreamTables[strings.ToLower(stream)]
	if !ok {
		return nil, apperrors.ErrUnknownStream
	}
	return s.modules.ListStreamModules(ctx, table)
}
