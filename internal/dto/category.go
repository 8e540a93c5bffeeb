package dto

import (
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/domain"
)

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	Code        string `json:"code"`
	Kind        string `json:"kind"`
	DisplayName string `json:"displayName"`
	Nature      string `json:"nature"`
	Tag         string `json:"tag"`
}

// ListCategoriesResponse wraps the category registry of one ledger side.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		Code:        cat.Code,
		Kind:        string(cat.Kind),
		DisplayName: cat.DisplayName,
		Nature:      string(cat.Nature),
		Tag:         cat.Tag,
	}
}

// ToListCategoriesResponse converts a slice of domain.Category to ListCategoriesResponse DTO.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		responses[i] = ToCategoryResponse(&cat)
	}
	return ListCategoriesResponse{Categories: responses}
}
