package upload

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFilename strips any path components and replaces unsafe characters
// so a client-supplied name can never escape the upload directory.
func SanitizeFilename(name string) string {
	// Drop directories from both unix and windows style paths.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// StoredName returns the collision-resistant filename a complaint image is
// persisted under: a random token plus the sanitized original name.
func StoredName(originalName string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s", token, SanitizeFilename(originalName))
}
