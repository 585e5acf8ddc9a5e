package entity

import (
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the lowercase extensions eligible for processing.
var SupportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
	".gif":  true,
}

// IsSupported reports whether name carries a supported extension, ignoring case.
func IsSupported(name string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(name))]
}

// SourceImage is one eligible input file. Width and Height are filled in at decode time.
type SourceImage struct {
	Path   string
	Name   string
	Stem   string
	Ext    string
	Width  int
	Height int
}

func NewSourceImage(path string) SourceImage {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	return SourceImage{
		Path: path,
		Name: name,
		Stem: strings.TrimSuffix(name, ext),
		Ext:  ext,
	}
}

type TargetDimensions struct {
	Width  int
	Height int
}

type FileFailure struct {
	Name    string
	Message string
}

type RunSummary struct {
	Found     int
	Processed int
	Errored   int
	Failures  []FileFailure
}

func (s *RunSummary) Success() {
	s.Processed++
}

func (s *RunSummary) Fail(name string, err error) {
	s.Errored++
	s.Failures = append(s.Failures, FileFailure{Name: name, Message: err.Error()})
}
