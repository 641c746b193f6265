package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/alimikegami/pos-microservices/marketplace-service/pkg/errs"
	"github.com/gabriel-vasile/mimetype"
)

const stagedFilePattern = "marketplace-upload-*"

// stagedFile is a multipart part copied to local disk. remove must run on
// every path once the upload is finished.
type stagedFile struct {
	path string
}

func (f stagedFile) remove() {
	os.Remove(f.path)
}

func stage(dir string, fh *multipart.FileHeader) (stagedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return stagedFile{}, fmt.Errorf("opening %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(dir, stagedFilePattern)
	if err != nil {
		return stagedFile{}, fmt.Errorf("creating temp file: %w", err)
	}

	f := stagedFile{path: dst.Name()}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		f.remove()
		return stagedFile{}, fmt.Errorf("staging %s: %w", fh.Filename, err)
	}

	if err := dst.Close(); err != nil {
		f.remove()
		return stagedFile{}, fmt.Errorf("staging %s: %w", fh.Filename, err)
	}

	mtype, err := mimetype.DetectFile(f.path)
	if err != nil {
		f.remove()
		return stagedFile{}, fmt.Errorf("detecting type of %s: %w", fh.Filename, err)
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		f.remove()
		return stagedFile{}, fmt.Errorf("%w: %s is %s", errs.ErrNotAnImage, fh.Filename, mtype.String())
	}

	return f, nil
}
