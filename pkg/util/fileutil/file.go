package fileutil

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteFile streams read into a newly created file at filePath.
func WriteFile(filePath string, read io.Reader) error {
	file, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", filePath)
	}
	defer func() { _ = file.Close() }()
	_, err = io.Copy(file, read)
	if err != nil {
		return errors.Wrap(err, "failed to write content to file")
	}
	return nil
}
