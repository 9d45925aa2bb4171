package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter interface defines how translations are loaded
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter is a simple adapter that uses an in-memory map as the translation source
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads translations from a single file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter creates a new FileAdapter instance.
// A nil parser is picked from the file extension at load time.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	return &FileAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFailedToReadFile)
	}
	dir, name := filepath.Split(a.path)
	if dir == "" {
		dir = "."
	}
	return loadFile(ctx, os.DirFS(dir), name, a.parser)
}

// DirectoryAdapter loads and merges every supported translation file of a directory.
// Subdirectories are not traversed.
type DirectoryAdapter struct {
	parser Parser
	path   string
}

// NewDirectoryAdapter creates a new DirectoryAdapter instance.
// A nil parser is picked per file from its extension, so YAML and JSON files can be mixed.
func NewDirectoryAdapter(parser Parser, path string) *DirectoryAdapter {
	return &DirectoryAdapter{parser: parser, path: path}
}

// Load implements the TranslationAdapter interface
func (a *DirectoryAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrFailedToReadDir)
	}
	info, err := os.Stat(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrFailedToReadDir, a.path)
	}
	return loadDir(ctx, os.DirFS(a.path), ".", a.parser)
}

// EmbeddedFsAdapter loads translations from a directory of any fs.FS, typically an embed.FS.
type EmbeddedFsAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewEmbeddedFsAdapter creates a new EmbeddedFsAdapter instance.
// A nil parser is picked per file from its extension.
func NewEmbeddedFsAdapter(parser Parser, fsys fs.FS, dir string) *EmbeddedFsAdapter {
	if dir == "" {
		dir = "."
	}
	return &EmbeddedFsAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load implements the TranslationAdapter interface
func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, fmt.Errorf("%w: nil filesystem", ErrFailedToReadDir)
	}
	return loadDir(ctx, a.fsys, a.dir, a.parser)
}

// MultiAdapter merges the output of several adapters. Later adapters override keys of
// earlier ones; nested maps are merged key by key rather than replaced.
type MultiAdapter struct {
	adapters []TranslationAdapter
}

// NewMultiAdapter creates a MultiAdapter over the non-nil adapters given.
func NewMultiAdapter(adapters ...TranslationAdapter) *MultiAdapter {
	clean := make([]TranslationAdapter, 0, len(adapters))
	for _, a := range adapters {
		if a != nil {
			clean = append(clean, a)
		}
	}
	return &MultiAdapter{adapters: clean}
}

// Load implements the TranslationAdapter interface
func (a *MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, adapter := range a.adapters {
		translations, err := adapter.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeLanguages(result, translations)
	}
	return result, nil
}

func loadDir(ctx context.Context, fsys fs.FS, dir string, parser Parser) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	result := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if p := pickParser(parser, entry.Name()); p == nil {
			continue
		}

		translations, err := loadFile(ctx, fsys, path.Join(dir, entry.Name()), parser)
		if err != nil {
			return nil, err
		}
		mergeLanguages(result, translations)
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationsFound, dir)
	}
	return result, nil
}

func loadFile(ctx context.Context, fsys fs.FS, name string, parser Parser) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	p := pickParser(parser, name)
	if p == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileFormat, name)
	}

	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrFailedToReadFile, name)
	}

	translations, err := p.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%q: %w", name, err))
	}
	return translations, nil
}

func pickParser(parser Parser, name string) Parser {
	if parser == nil {
		return NewParserForFile(name)
	}
	if parser.SupportsFileExtension(path.Ext(name)) {
		return parser
	}
	return nil
}

func mergeLanguages(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeTree(dst[lang], translations)
	}
}

// mergeTree copies src into dst, descending into maps present on both sides.
func mergeTree(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := asStringMap(val)
		dstMap, dstIsMap := asStringMap(dst[key])
		if srcIsMap && dstIsMap {
			merged := make(map[string]any, len(dstMap)+len(srcMap))
			mergeTree(merged, dstMap)
			mergeTree(merged, srcMap)
			dst[key] = merged
			continue
		}
		dst[key] = val
	}
}

func asStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		return stringKeys(m), true
	default:
		return nil, false
	}
}
