package service

import (
	"github.com/ds124wfegd/photomini/internal/entity"
	"github.com/ds124wfegd/photomini/internal/pkg/processor"
	"github.com/ds124wfegd/photomini/internal/pkg/storage"

	"github.com/sirupsen/logrus"
)

type BatchResizer interface {
	Run(inputDir, outputDir string, minDimension int) (entity.RunSummary, error)
}

type StorageFactory func(basePath string) storage.FileStorage

type batchResizer struct {
	processor  processor.ImageProcessor
	newStorage StorageFactory
	log        *logrus.Entry
}

func NewBatchResizer(processor processor.ImageProcessor, newStorage StorageFactory, log *logrus.Entry) BatchResizer {
	return &batchResizer{
		processor:  processor,
		newStorage: newStorage,
		log:        log,
	}
}
