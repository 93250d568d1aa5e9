package pipeline

import (
	"fmt"

	"github.com/goprotex/Disaster-Response/internal/media/sniffer"
)

const (
	// MaxFiles caps the photos attached to one submission.
	MaxFiles = 5
	// MaxFileBytes caps a single photo as received, before compression.
	MaxFileBytes = 50 << 20
)

// File is one uploaded photo as received from the form. The pipeline only
// reads it; the caller keeps ownership of the source bytes.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// Validate checks a batch before any processing starts and returns every
// user-facing violation. An empty batch is reported alone; past that check
// all rules are evaluated so the submitter sees the full list at once.
func Validate(files []File) []string {
	if len(files) == 0 {
		return []string{"No files selected"}
	}

	var errs []string
	if len(files) > MaxFiles {
		errs = append(errs, "Maximum 5 images allowed")
	}

	for i, f := range files {
		if !sniffer.IsDeclaredImage(f.ContentType) {
			errs = append(errs, fmt.Sprintf("File %d (%s) is not an image", i+1, f.Name))
		}
		if f.Size > MaxFileBytes {
			errs = append(errs, fmt.Sprintf("File %d (%s) is too large (>50MB)", i+1, f.Name))
		}
	}
	return errs
}
