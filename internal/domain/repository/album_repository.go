package repository

import (
	"context"

	"alumnihub/internal/domain/entity"
)

// AlbumRepository lists gallery album metadata. Albums are seeded out of
// band; the API only reads them.
type AlbumRepository interface {
	// List returns all albums, newest year first.
	List(ctx context.Context) ([]*entity.Album, error)
}
