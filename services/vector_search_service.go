package services

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"

	"github.com/KP-365/TheWearDeck/models"
)

// VectorSearchService ranks catalog products by L2 distance to a query
// embedding using pgvector's <-> operator, so the nearest-neighbour work
// stays in the database.
type VectorSearchService struct {
	pool *pgxpool.Pool
}

func NewVectorSearchService(pool *pgxpool.Pool) *VectorSearchService {
	return &VectorSearchService{pool: pool}
}

// SearchProducts returns the topK products nearest to the query embedding,
// each with its distance and a 1/(1+distance) similarity score. Products
// without an embedding are skipped.
func (s *VectorSearchService) SearchProducts(ctx context.Context, embedding []float32, topK int) ([]models.ScoredProduct, error) {
	if topK <= 0 {
		topK = 5
	}

	query := `
		SELECT id, name, price, description, COALESCE(category, ''), brand, size, color,
		       COALESCE(image_url, ''), COALESCE(cloudinary_public_id, ''), affiliate_link,
		       created_at, updated_at,
		       embedding <-> $1 AS distance
		FROM products
		WHERE embedding IS NOT NULL
		ORDER BY distance
		LIMIT $2
	`

	rows, err := s.pool.Query(ctx, query, pgvector.NewVector(embedding), topK)
	if err != nil {
		return nil, errors.Wrap(err, "vector search query failed")
	}
	defer rows.Close()

	results := []models.ScoredProduct{}
	for rows.Next() {
		var p models.Product
		var distance float64
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Description,
			&p.Category,
			&p.Brand,
			&p.Size,
			&p.Color,
			&p.ImageURL,
			&p.CloudinaryPublicID,
			&p.AffiliateLink,
			&p.CreatedAt,
			&p.UpdatedAt,
			&distance,
		)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan product")
		}
		results = append(results, models.ScoredProduct{
			Product:         p,
			Distance:        distance,
			SimilarityScore: 1 / (1 + distance),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
