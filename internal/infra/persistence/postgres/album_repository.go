package postgres

import (
	"context"

	"alumnihub/internal/domain/entity"
	"alumnihub/internal/domain/repository"
	"alumnihub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// albumRepository implements the repository.AlbumRepository interface.
type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository is the constructor for albumRepository.
func NewAlbumRepository(db *gorm.DB) repository.AlbumRepository {
	return &albumRepository{
		db: db,
	}
}

// List returns all albums, newest year first.
func (repo *albumRepository) List(ctx context.Context) ([]*entity.Album, error) {
	var albumModels []*model.AlbumModel

	if err := repo.db.WithContext(ctx).
		Order("year DESC, created_at DESC").
		Find(&albumModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list albums")
	}

	albums := make([]*entity.Album, 0, len(albumModels))
	for _, albumM := range albumModels {
		album, err := toAlbumDomain(albumM)
		if err != nil {
			return nil, err
		}
		albums = append(albums, album)
	}

	return albums, nil
}

// --- Mapper Functions ---

// toAlbumDomain converts a GORM AlbumModel to a domain Album entity.
func toAlbumDomain(data *model.AlbumModel) (*entity.Album, error) {
	if data == nil {
		return nil, nil
	}

	album := &entity.Album{
		ID:        data.ID,
		Year:      data.Year,
		Slug:      data.Slug,
		Title:     data.Title,
		Event:     data.Event,
		Date:      data.Date,
		Photos:    data.Photos,
		Accent:    data.Accent,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if err := unmarshalJSONColumn(data.Tags, &album.Tags); err != nil {
		return nil, errors.Wrap(err, "failed to decode album tags")
	}

	return album, nil
}
