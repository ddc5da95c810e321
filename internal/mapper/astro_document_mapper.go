package mapper

import (
	"encoding/json"
	"time"

	"astro-context-be/internal/entity"
	"astro-context-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type AstroDocumentMapper struct{}

func NewAstroDocumentMapper() *AstroDocumentMapper {
	return &AstroDocumentMapper{}
}

func (m *AstroDocumentMapper) ToEntity(d *model.AstroDocument) *entity.AstroDocument {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	var metadata map[string]interface{}
	if len(d.Metadata) > 0 {
		// Metadata is written by us, so a decode failure means a corrupt
		// row; surface it as nil metadata rather than failing the read.
		_ = json.Unmarshal(d.Metadata, &metadata)
	}

	return &entity.AstroDocument{
		Id:        d.Id,
		Content:   d.Content,
		Metadata:  metadata,
		Embedding: d.Embedding.Slice(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AstroDocumentMapper) ToModel(d *entity.AstroDocument) *model.AstroDocument {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	var metadata datatypes.JSON
	if d.Metadata != nil {
		if raw, err := json.Marshal(d.Metadata); err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	return &model.AstroDocument{
		Id:        d.Id,
		Content:   d.Content,
		Metadata:  metadata,
		Embedding: pgvector.NewVector(d.Embedding),
		CreatedAt: d.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AstroDocumentMapper) ToEntities(docs []*model.AstroDocument) []*entity.AstroDocument {
	entities := make([]*entity.AstroDocument, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
