package catalog

import (
	"truck-locator/models"
	"truck-locator/util"
)

// FileSource reads the catalog from a static JSON document on disk, the
// canonical deployment shape: the catalog ships with the app.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) FetchLocations() ([]models.Location, error) {
	return util.ReadLocationsFromJSON(s.Path)
}
