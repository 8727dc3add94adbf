package ports

// Hasher defines the interface for computing file content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns a deterministic hex-encoded digest of the file's
	// current byte contents. It fails if the path cannot be read.
	HashFile(path string) (string, error)
}
