package mock

import "github.com/paperext/paperext"

var _ paperext.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of paperext.FileStore.
type FileStore struct {
	SaveFn func(filename string, data []byte) (string, bool, error)
}

func (s *FileStore) Save(filename string, data []byte) (string, bool, error) {
	return s.SaveFn(filename, data)
}
