package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/camisetasbahia/catalogo-api/internal/domain/entity"
)

// EnsureSeed inserta el catálogo inicial si la tabla está vacía. Cualquier
/// fallo se loguea y no es fatal: el servidor arranca igual con catálogo vacío.
func (s *ProductService) EnsureSeed(ctx context.Context) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("contar productos para seed")
		return
	}
	if n > 0 {
		return
	}
	seed := initialProducts()
	if err := s.repo.CreateBatch(ctx, seed); err != nil {
		s.log.Error().Err(err).Msg("insertar catálogo inicial")
		return
	}
	s.log.Info().Int("cantidad", len(seed)).Msg("catálogo inicial insertado")
}

func initialProducts() []*entity.Product {
	now := time.Now()
	mk := func(name string, price int64, sub2, sub3, temporada string, images []string) *entity.Product {
		p := decimal.NewFromInt(price)
		return &entity.Product{
			ID:                uuid.New().String(),
			Name:              &name,
			Category:          "adulto",
			Subcategory:       "futbol",
			Subsubcategory:    strPtr(sub2),
			Subsubsubcategory: strPtr(sub3),
			Price:             &p,
			Images:            images,
			Temporada:         temporada,
			Marca:             "Adidas",
			Description:       nil,
			Sizes:             []string{"S", "M", "L", "XL"},
			CreatedAt:         now,
			UpdatedAt:         now,
			UserID:            entity.SystemUserID,
		}
	}
	return []*entity.Product{
		mk("Argentina 2022 Campeón", 24999, "camisetas", "selecciones-nacionales", "2022",
			[]string{
				"https://images.unsplash.com/photo-1671465317593-a637c8a0e08c?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1671465314792-2bd24c64c1c4?q=80&w=600&auto=format&fit=crop",
			}),
		mk("Boca Juniors 2024", 22999, "camisetas", "clubes-nacionales", "2024",
			[]string{
				"https://images.unsplash.com/photo-1614632537197-38a17061c2bd?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1614632537355-3aa9c93c8e8c?q=80&w=600&auto=format&fit=crop",
			}),
		mk("River Plate Retro 1986", 19999, "camisetas-retro", "retro-clubes-nacionales", "1986",
			[]string{
				"https://images.unsplash.com/photo-1577471488278-16eec37ffcc2?q=80&w=600&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1577471488695-a4dd0d38c335?q=80&w=600&auto=format&fit=crop",
			}),
	}
}

func strPtr(s string) *string { return &s }
