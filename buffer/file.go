package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPath is returned by Save when the buffer has no associated file.
var ErrNoPath = errors.New("buffer: no file path")

// FileType selects the syntax rules used to highlight a buffer.
type FileType uint8

const (
	FileTypeText FileType = iota
	FileTypeRust
	FileTypeGo
)

func (t FileType) String() string {
	switch t {
	case FileTypeRust:
		return "Rust"
	case FileTypeGo:
		return "Go"
	default:
		return "Text"
	}
}

// DetectFileType maps a path's extension to a FileType.
func DetectFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rs":
		return FileTypeRust
	case ".go":
		return FileTypeGo
	default:
		return FileTypeText
	}
}

// FileInfo describes the file a buffer is associated with.
type FileInfo struct {
	Path     string
	FileType FileType
}

// NewFileInfo returns the FileInfo for path, detecting its type.
func NewFileInfo(path string) FileInfo {
	return FileInfo{Path: path, FileType: DetectFileType(path)}
}

func (fi FileInfo) HasPath() bool { return fi.Path != "" }

// Name returns the base name of the path, or "[No Name]".
func (fi FileInfo) Name() string {
	if fi.Path == "" {
		return "[No Name]"
	}
	return filepath.Base(fi.Path)
}

// Load reads path into a new buffer, one Line per newline-terminated line.
func Load(path string, opt Options) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	b := FromString(string(data), opt)
	b.fileInfo = NewFileInfo(path)
	return b, nil
}

// Save writes the buffer to its associated file and clears the dirty flag.
func (b *Buffer) Save() error {
	if !b.fileInfo.HasPath() {
		return ErrNoPath
	}
	if err := b.writeFile(b.fileInfo.Path); err != nil {
		return err
	}
	b.dirty = false
	return nil
}

// SaveAs writes the buffer to path and associates the buffer with it.
func (b *Buffer) SaveAs(path string) error {
	if err := b.writeFile(path); err != nil {
		return err
	}
	b.fileInfo = NewFileInfo(path)
	b.dirty = false
	return nil
}

// writeFile writes every line followed by '\n'.
func (b *Buffer) writeFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for i := range b.lines {
		if _, err := w.WriteString(b.lines[i].text); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
