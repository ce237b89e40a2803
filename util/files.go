package util

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

func MD5File(fileName string) (string, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return "", err
	}
	defer file.Close()

	md5 := md5.New()
	if _, err := io.Copy(md5, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", md5.Sum(nil)), nil
}

// LocateFile looks for filename as given, then inside each of dirs.
func LocateFile(filename string, dirs []string) (string, bool) {
	if filename == "" {
		return "", false
	}
	if _, err := os.Stat(filename); err == nil {
		return filename, true
	}
	if filepath.IsAbs(filename) {
		return "", false
	}
	for _, dir := range dirs {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
