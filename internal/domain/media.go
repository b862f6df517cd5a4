package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeMain    MediaType = "main"
	MediaTypePreview MediaType = "preview"
)

var validMediaTypes = map[MediaType]struct{}{
	MediaTypeMain:    {},
	MediaTypePreview: {},
}

func ToMediaType(s string) (MediaType, error) {
	mediaType := MediaType(s)
	if _, ok := validMediaTypes[mediaType]; ok {
		return mediaType, nil
	}

	return "", errors.New("invalid media type")
}

// Media is one file attachment of a digital product.
// FileID is an opaque handle into the external file storage.
type Media struct {
	ID               uuid.UUID
	DigitalProductID uuid.UUID
	FileID           string
	MimeType         string
	Type             MediaType

	// URL is resolved from the file service on reads, never persisted.
	URL string

	CreatedAt time.Time
	DeletedAt *time.Time
}

// MediaKey identifies a media row within one digital product.
// At most one non-deleted row per key may exist.
type MediaKey struct {
	FileID string
	Type   MediaType
}

func (m Media) Key() MediaKey {
	return MediaKey{FileID: m.FileID, Type: m.Type}
}
