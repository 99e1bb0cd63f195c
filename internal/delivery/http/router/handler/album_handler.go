package handler

import (
	"net/http"

	"alumnihub/internal/delivery/http/response"
	"alumnihub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlbumHandler serves the read-only gallery index.
type AlbumHandler struct {
	uc usecase.AlbumUsecase
}

// NewAlbumHandler is the constructor for AlbumHandler, injected by Fx.
func NewAlbumHandler(uc usecase.AlbumUsecase) *AlbumHandler {
	return &AlbumHandler{uc: uc}
}

// List returns all albums, newest year first.
func (h *AlbumHandler) List(c echo.Context) error {
	albums, err := h.uc.ListAlbums(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, albums, "")
}
