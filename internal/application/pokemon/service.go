package pokemon

import (
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	domain "pokedex/internal/domain/pokemon"
)

// Service defines the business logic for catalog operations
type Service interface {
	List() ([]domain.Pokemon, error)
	Get(id int) (*domain.Pokemon, error)
	Create(p domain.Pokemon, image *multipart.FileHeader) (*domain.Pokemon, error)
	UpdateStats(id int, patch domain.StatPatch) (*domain.Pokemon, error)
	Delete(id int) (*domain.Pokemon, error)
}

// ImageStore persists uploaded image assets and reports the public
// path they are served from.
type ImageStore interface {
	Save(id int, ext string, image *multipart.FileHeader) (string, error)
	PublicPath(id int, ext string) string
}

type service struct {
	repo   domain.Repository
	images ImageStore
}

// NewService creates a new catalog service
func NewService(repo domain.Repository, images ImageStore) Service {
	return &service{repo: repo, images: images}
}

func (s *service) List() ([]domain.Pokemon, error) {
	return s.repo.List()
}

func (s *service) Get(id int) (*domain.Pokemon, error) {
	return s.repo.GetByID(id)
}

// Allowed upload types. Extension and declared media type must both
// match before anything is written.
var allowedImageTypes = []string{"jpeg", "jpg", "png"}

func (s *service) Create(p domain.Pokemon, image *multipart.FileHeader) (*domain.Pokemon, error) {
	if image == nil {
		return nil, domain.ErrMissingImage
	}
	if p.Name.English == "" {
		return nil, domain.ErrNameRequired
	}

	ext := strings.ToLower(filepath.Ext(image.Filename))
	if !isAllowedImage(ext, image.Header.Get("Content-Type")) {
		return nil, domain.ErrInvalidImageType
	}

	// The record is inserted first so a duplicate id never overwrites
	// an existing entry's image file.
	p.Image = s.images.PublicPath(p.ID, ext)
	if err := s.repo.Create(&p); err != nil {
		return nil, err
	}

	if _, err := s.images.Save(p.ID, ext, image); err != nil {
		// Best-effort rollback of the record we just inserted.
		if _, delErr := s.repo.Delete(p.ID); delErr != nil {
			slog.Error("failed to roll back catalog entry after image write failure",
				"id", p.ID, "error", delErr)
		}
		return nil, err
	}

	return &p, nil
}

func (s *service) UpdateStats(id int, patch domain.StatPatch) (*domain.Pokemon, error) {
	return s.repo.UpdateStats(id, patch)
}

func (s *service) Delete(id int) (*domain.Pokemon, error) {
	return s.repo.Delete(id)
}

func isAllowedImage(ext, contentType string) bool {
	extOK := false
	for _, t := range allowedImageTypes {
		if ext == "."+t {
			extOK = true
			break
		}
	}
	if !extOK {
		return false
	}
	for _, t := range allowedImageTypes {
		if strings.Contains(contentType, t) {
			return true
		}
	}
	return false
}
