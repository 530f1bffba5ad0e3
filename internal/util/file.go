package util

import (
	"os"
	"strings"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

var unsafeFilename = strings.NewReplacer(
	"/", "-", "\\", "-", ":", "-", "*", "-", "?", "", "\"", "'", "<", "", ">", "", "|", "-",
	"\n", " ", "\r", " ", "\t", " ", "\x00", "",
)

// SafeFilename strips path separators and characters that common file
// systems reject, keeping spaces and parentheses.
func SafeFilename(name string) string {
	name = strings.TrimSpace(unsafeFilename.Replace(name))
	name = strings.Trim(name, ".")
	if name == "" {
		return "certificate"
	}
	return name
}
