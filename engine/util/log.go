package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogVoxel | LogLight | LogMesh | LogIO | LogSystem

var logOutput io.Writer = os.Stderr

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogLight
	LogMesh
	LogIO
	LogSystem
)

var levelColors = map[LogLevel]*color.Color{
	LogLevelError:   color.New(color.FgRed, color.Bold),
	LogLevelWarning: color.New(color.FgYellow),
	LogLevelInfo:    color.New(color.FgGreen),
	LogLevelDebug:   color.New(color.FgHiBlack),
}

func init() {
	if f, ok := logOutput.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}
}

// SetLogOutput redirects log lines. Colour is only kept for terminals.
func SetLogOutput(w io.Writer) {
	logOutput = w
	f, ok := w.(*os.File)
	color.NoColor = !ok || !term.IsTerminal(int(f.Fd()))
}

func SetLogLevel(lvl LogLevel) {
	GLOBAL_LOG_LEVEL = lvl
}

func SetLogCategories(cats LogCategory) {
	GLOBAL_LOG_CATEGORIES = cats
}

// ParseLogLevel accepts error, warning, info and debug.
func ParseLogLevel(name string) (LogLevel, bool) {
	switch strings.ToLower(name) {
	case "error":
		return LogLevelError, true
	case "warning", "warn":
		return LogLevelWarning, true
	case "info":
		return LogLevelInfo, true
	case "debug":
		return LogLevelDebug, true
	}
	return 0, false
}

// ParseLogCategories accepts category names (voxel, light, mesh, io, system) or "all".
func ParseLogCategories(names []string) (LogCategory, error) {
	var cats LogCategory
	for _, name := range names {
		switch strings.ToLower(name) {
		case "voxel":
			cats |= LogVoxel
		case "light":
			cats |= LogLight
		case "mesh":
			cats |= LogMesh
		case "io":
			cats |= LogIO
		case "system":
			cats |= LogSystem
		case "all":
			cats |= LogVoxel | LogLight | LogMesh | LogIO | LogSystem
		default:
			return 0, fmt.Errorf("unknown log category %q", name)
		}
	}
	return cats, nil
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	levelColors[lvl].Fprintln(logOutput, txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelDebug(txt string) {
	log(LogVoxel, LogLevelDebug, txt)
}

func LogVoxelWarning(txt string) {
	log(LogVoxel, LogLevelWarning, txt)
}

func LogLightInfo(txt string) {
	log(LogLight, LogLevelInfo, txt)
}

func LogLightDebug(txt string) {
	log(LogLight, LogLevelDebug, txt)
}

func LogLightError(txt string) {
	log(LogLight, LogLevelError, txt)
}

func LogMeshInfo(txt string) {
	log(LogMesh, LogLevelInfo, txt)
}

func LogMeshDebug(txt string) {
	log(LogMesh, LogLevelDebug, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogSystemError(txt string) {
	log(LogSystem, LogLevelError, txt)
}
