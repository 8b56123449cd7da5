package app

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/ludo-technologies/jcleanup/domain"
	"github.com/ludo-technologies/jcleanup/internal/constants"
)

// FileHelper provides file operation utilities for Java source trees.
// It implements domain.JavaFileReader.
type FileHelper struct {
	// RespectGitignore skips files matched by a .gitignore found at a
	// scanned root
	RespectGitignore bool
}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{RespectGitignore: true}
}

// CollectJavaFiles collects Java files from the given paths. Directories
// are walked recursively. The result is sorted so runs over the same tree
// are deterministic.
func (h *FileHelper) CollectJavaFiles(paths []string, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.isJavaFile(path) && !h.isExcluded(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		ignorer := h.loadGitignore(path)

		err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Skip excluded directories early
			if info.IsDir() {
				dirName := filepath.Base(filePath)
				for _, pattern := range excludePatterns {
					if pattern == dirName {
						return filepath.SkipDir
					}
					if matched, _ := filepath.Match(pattern, dirName); matched {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !h.isJavaFile(filePath) || h.isExcluded(filePath, excludePatterns) {
				return nil
			}
			if ignorer != nil {
				if rel, err := filepath.Rel(path, filePath); err == nil && ignorer.MatchesPath(rel) {
					return nil
				}
			}

			files = append(files, filePath)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsValidJavaFile checks if a file is a Java source file
func (h *FileHelper) IsValidJavaFile(path string) bool {
	return h.isJavaFile(path)
}

// FileExists checks if a regular file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (h *FileHelper) isJavaFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == constants.SourceFileExtension
}

// isExcluded checks if a path matches any exclude pattern
func (h *FileHelper) isExcluded(path string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		// Also check full path matching
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

func (h *FileHelper) loadGitignore(root string) *gitignore.GitIgnore {
	if !h.RespectGitignore {
		return nil
	}
	ignorer, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return ignorer
}

var _ domain.JavaFileReader = (*FileHelper)(nil)
