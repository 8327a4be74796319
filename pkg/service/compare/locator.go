package compare

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
	"go.uber.org/zap"
)

// Locate expands the caller-supplied paths into the ordered, deduplicated
// list of config files to parse.
//
// With no paths given, the host's default config file is substituted; a
// missing default is not an error, just "no local settings". Directories are
// walked recursively and contribute their *.py files in lexical order, while
// explicitly named files are taken regardless of suffix. An explicitly named
// path that does not exist aborts with a PathNotFoundError.
func Locate(logger *zap.Logger, paths []string, hostConfigName string) ([]string, []models.Warning, error) {
	var warnings []models.Warning

	if len(paths) == 0 {
		def, err := defaultConfigFile(hostConfigName)
		if err != nil {
			return nil, nil, err
		}
		if _, err := os.Stat(def); err != nil {
			logger.Debug("default config file does not exist", zap.String("path", def))
			return nil, nil, nil
		}
		return []string{def}, nil, nil
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			files = append(files, abs)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil, &models.PathNotFoundError{Path: path}
			}
			return nil, nil, err
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtree, keep going with the rest.
				warnings = append(warnings, models.Warning{File: p, Message: "skipped: " + err.Error()})
				return fs.SkipDir
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".py") {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}

	return files, warnings, nil
}

func defaultConfigFile(hostConfigName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "qutebrowser", hostConfigName), nil
}
