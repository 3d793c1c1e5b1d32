package paperext

// FileStore persists uploaded PDF files under sanitized names.
type FileStore interface {
	// Save writes data under the sanitized filename and returns the full
	// path. When a file with the same name already exists it is left
	// untouched and existed is true.
	Save(filename string, data []byte) (path string, existed bool, err error)
}
