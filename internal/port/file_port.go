package port

import "context"

type FileInfo struct {
	URL string `json:"url"`
}

// FileService resolves an opaque content identifier to a downloadable URL.
type FileService interface {
	RetrieveFile(ctx context.Context, fileID string) (FileInfo, error)
}
