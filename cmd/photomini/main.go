package main

import (
	"os"

	"github.com/ds124wfegd/photomini/config"
	"github.com/ds124wfegd/photomini/internal/pkg/processor"
	"github.com/ds124wfegd/photomini/internal/pkg/storage"
	"github.com/ds124wfegd/photomini/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err.Error())
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("error parsing config: %s", err.Error())
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.Log.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	resizer := service.NewBatchResizer(
		processor.NewImageProcessor(),
		storage.NewFileStorage,
		logrus.NewEntry(logrus.StandardLogger()),
	)

	if _, err := resizer.Run(cfg.Resize.InputFolder, cfg.Resize.OutputFolder, cfg.Resize.MinDimension); err != nil {
		logrus.Fatalf("error occured while resizing photos: %s", err.Error())
	}
}
