package implementation

import (
	"context"
	"errors"

	"astro-context-be/internal/entity"
	"astro-context-be/internal/mapper"
	"astro-context-be/internal/model"
	"astro-context-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AstroDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AstroDocumentMapper
}

func NewAstroDocumentRepository(db *gorm.DB) contract.AstroDocumentRepository {
	return &AstroDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAstroDocumentMapper(),
	}
}

func (r *AstroDocumentRepositoryImpl) Upsert(ctx context.Context, doc *entity.AstroDocument) error {
	m := r.mapper.ToModel(doc)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content", "metadata", "embedding", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return err
	}
	*doc = *r.mapper.ToEntity(m)
	return nil
}

func (r *AstroDocumentRepositoryImpl) FindById(ctx context.Context, id string) (*entity.AstroDocument, error) {
	var m model.AstroDocument
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// SearchSimilarWithScore returns documents with similarity scores above threshold.
func (r *AstroDocumentRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredAstroDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding <=> query_vector) = cosine_similarity
	type result struct {
		model.AstroDocument
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("astro_documents").
		Select("astro_documents.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("1 - (embedding <=> ?) > ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredAstroDocument, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredAstroDocument{
			Document:   r.mapper.ToEntity(&res.AstroDocument),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *AstroDocumentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.AstroDocument{}).Count(&count).Error
	return count, err
}
