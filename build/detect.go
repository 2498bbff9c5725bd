package build

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
)

// manuscriptExts are extensions of files considered manuscripts, names in
// archives use the same rule.
var manuscriptExts = []string{".yaml", ".yml"}

func isManuscriptName(name string) bool {
	return slices.Contains(manuscriptExts, strings.ToLower(filepath.Ext(name)))
}

// isArchiveFile checks file signature, extension is not trusted.
func isArchiveFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// filetype needs at most 262 bytes of header
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}
