package service

import (
	"bytes"
	"fmt"

	"github.com/ds124wfegd/photomini/internal/entity"
	"github.com/ds124wfegd/photomini/internal/pkg/processor"
	"github.com/ds124wfegd/photomini/internal/pkg/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Run resizes every supported image directly inside inputDir into outputDir.
// Per-file failures are logged and counted; only setup failures are returned.
func (s *batchResizer) Run(inputDir, outputDir string, minDimension int) (entity.RunSummary, error) {
	var summary entity.RunSummary

	if minDimension <= 0 {
		return summary, fmt.Errorf("%w: %d", entity.ErrInvalidMinDimension, minDimension)
	}

	log := s.log.WithField("run", uuid.NewString())

	output := s.newStorage(outputDir)
	if err := output.EnsureDir(); err != nil {
		return summary, fmt.Errorf("failed to create output folder %q: %w", outputDir, err)
	}

	input := s.newStorage(inputDir)
	names, err := input.List(entity.IsSupported)
	if err != nil {
		return summary, fmt.Errorf("failed to list input folder %q: %w", inputDir, err)
	}

	if len(names) == 0 {
		log.Infof("No supported image files found in '%s'", inputDir)
		return summary, nil
	}

	summary.Found = len(names)
	log.Infof("Found %d image files to process", summary.Found)

	for _, name := range names {
		src := entity.NewSourceImage(input.Path(name))
		outName := processor.OutputName(src)

		if err := s.processFile(log, input, output, &src, outName, minDimension); err != nil {
			summary.Fail(src.Name, err)
			log.WithField("file", src.Name).Errorf("Error processing %s: %v", src.Name, err)
			continue
		}

		summary.Success()
		log.WithField("file", src.Name).Infof("Processed: %s -> %s", src.Name, outName)
	}

	log.Info("Processing complete!")
	log.Infof("Successfully processed: %d files", summary.Processed)
	log.Infof("Errors: %d files", summary.Errored)

	return summary, nil
}

// processFile holds the source open only for the duration of one file. The
// encoded result is buffered so a failed encode never reaches the output folder.
func (s *batchResizer) processFile(log *logrus.Entry, input, output storage.FileStorage, src *entity.SourceImage, outName string, minDimension int) error {
	reader, err := input.Get(src.Name)
	if err != nil {
		return err
	}
	defer reader.Close()

	var encoded bytes.Buffer
	dims, err := s.processor.Process(src, reader, &encoded, minDimension)
	if err != nil {
		return err
	}

	if err := output.Save(outName, &encoded); err != nil {
		return fmt.Errorf("failed to write %s: %w", outName, err)
	}

	log.Debugf("Resized %s from %dx%d to %dx%d", src.Name, src.Width, src.Height, dims.Width, dims.Height)
	return nil
}
