package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileSource loads dictionaries from local files (YAML or JSON)
type FileSource struct {
	// Paths specifies file paths to load and merge
	Paths []string

	// Dir specifies a directory to scan for dictionary files
	Dir string

	// Format specifies the file format ("yaml", "json", or "auto")
	Format string
}

// Load reads every configured file and merges the definitions into base.
// When base is nil the files are merged into a new empty dictionary.
func (s *FileSource) Load(ctx context.Context, base *Dictionary) (*Dictionary, error) {
	filePaths := append([]string(nil), s.Paths...)

	if s.Dir != "" {
		dirFiles, err := scanDirectory(s.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", s.Dir, err)
		}
		filePaths = append(filePaths, dirFiles...)
	}

	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no files specified to load")
	}

	merged := base
	if merged == nil {
		merged = New()
	}

	for _, path := range filePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attrs, err := s.loadSingleFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load file %s: %w", path, err)
		}

		if err := merged.AddAttributes(attrs); err != nil {
			return nil, fmt.Errorf("failed to merge dictionary from %s: %w", path, err)
		}
	}

	return merged, nil
}

func scanDirectory(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml", ".json":
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func (s *FileSource) loadSingleFile(path string) ([]*AttributeDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := s.Format
	if format == "" || format == "auto" {
		format = detectFormat(path, data)
	}

	var file File
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return file.Attributes, nil
}

func detectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		// Try to detect from content
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			return "json"
		}
		return "yaml"
	}
}
