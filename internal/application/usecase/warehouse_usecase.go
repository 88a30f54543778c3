package usecase

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/supplysight/supplysight-api/internal/application/dto"
	"github.com/supplysight/supplysight-api/internal/domain/repository"
)

// WarehouseUseCase consultas sobre el catálogo estático de bodegas.
type WarehouseUseCase struct {
	repo     repository.WarehouseRepository
	collator *collate.Collator
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{
		repo:     repo,
		collator: collate.New(language.English),
	}
}

// List devuelve todas las bodegas sin filtrar, más la lista de códigos
// únicos (recortados, sin vacíos) en orden de colación para el selector.
func (uc *WarehouseUseCase) List() (*dto.WarehouseListResponse, error) {
	warehouses, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	items := make([]dto.WarehouseResponse, 0, len(warehouses))
	seen := make(map[string]bool, len(warehouses))
	codes := make([]string, 0, len(warehouses))
	for _, w := range warehouses {
		items = append(items, dto.WarehouseResponse{
			ID:      w.ID,
			Code:    w.Code,
			City:    w.City,
			Country: w.Country,
		})
		code := strings.TrimSpace(w.Code)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	uc.collator.SortStrings(codes)

	return &dto.WarehouseListResponse{Items: items, Codes: codes}, nil
}

// Codes devuelve solo los códigos únicos ordenados.
func (uc *WarehouseUseCase) Codes() ([]string, error) {
	list, err := uc.List()
	if err != nil {
		return nil, err
	}
	return list.Codes, nil
}
