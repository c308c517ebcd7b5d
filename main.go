package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ytget/image-searcher/internal/activity"
	"github.com/ytget/image-searcher/internal/config"
	"github.com/ytget/image-searcher/internal/download"
	"github.com/ytget/image-searcher/internal/platform"
	"github.com/ytget/image-searcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.image-searcher"
	AppName = "NASA Image Searcher"

	LogFileName   = "image-searcher.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
)

var log = logrus.New()

func main() {
	level := flag.String("log-level", "info", "process log level (debug, info, warn, error)")
	logFile := flag.String("log-file", defaultLogFile(), "process log file, empty to log to stderr only")
	flag.Parse()

	setupLogging(*level, *logFile)
	log.WithField("version", version).Infof("%s starting", AppName)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewTerminalTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.MainWindowWidth, ui.MainWindowHeight))

	settings := config.NewSettings(myApp)

	fetcher := download.NewClient(settings.GetRequestTimeout(), log)
	searchClient := platform.NewSearchClient(settings.GetSearchEndpoint(), fetcher, log)
	activityLog := activity.NewLog(log.WithField("component", "activity"))

	ui.NewRootUI(myWindow, myApp, settings, activityLog, fetcher, searchClient, log)

	myWindow.ShowAndRun()
	log.Info("window closed, exiting")
}

func setupLogging(level, file string) {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if file == "" {
		return
	}
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(file)); err != nil {
		log.WithError(err).Warn("cannot create log directory, logging to stderr only")
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   file,
		MaxSize:    LogMaxSizeMB,
		MaxBackups: LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
		Compress:   true,
	}))
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "image-searcher", LogFileName)
}
