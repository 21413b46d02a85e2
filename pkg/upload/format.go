package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/logspect/logspect-client/pkg/api"
)

// AcceptedExtensions is the informational list shown next to the file
// picker. Nothing is rejected client-side; the backend decides what it
// can parse.
var AcceptedExtensions = []string{".log", ".txt", ".json", ".csv", ".xml"}

// Format codes as the backend's format table defines them.
const (
	FormatLog  = 1
	FormatText = 2
	FormatJSON = 3
	FormatCSV  = 4
	FormatXML  = 5
)

// FormatHint maps a file name to a backend format code by extension. It
// is a best-effort hint only: the backend runs its own detection per file
// and that result is authoritative. Never rely on this for correctness.
func FormatHint(name string) int {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return FormatText
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	case ".xml":
		return FormatXML
	default:
		return FormatLog
	}
}

// FileFromPath builds an upload handle for a file on disk. The file is
// opened at submit time, and again if the batch is retried.
func FileFromPath(path string) api.UploadFile {
	return api.UploadFile{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// FilesFromPaths builds upload handles for several files on disk.
func FilesFromPaths(paths []string) []api.UploadFile {
	files := make([]api.UploadFile, 0, len(paths))
	for _, path := range paths {
		files = append(files, FileFromPath(path))
	}
	return files
}
