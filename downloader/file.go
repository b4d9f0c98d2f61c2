package downloader

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Reads datasets from the local filesystem. Sources may be plain
// paths or file:// URLs. Caching options are ignored.
type FileDownloader struct{}

func NewFileDownloader() *FileDownloader {
	return &FileDownloader{}
}

func (FileDownloader) Get(
	ctx context.Context,
	source string,
	options GetOptions,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := strings.TrimPrefix(source, "file://")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return readAll(f, options.MaxSize)
}
