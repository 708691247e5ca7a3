package util

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogVoxel | LogOpenGL | LogSystem | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogOpenGL
	LogSystem
	LogIO
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelDebug(txt string) {
	log(LogVoxel, LogLevelDebug, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogSystemError(txt string) {
	log(LogSystem, LogLevelError, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogGlInfo(txt string) {
	log(LogOpenGL, LogLevelInfo, txt)
}

func LogGlError(txt string) {
	log(LogOpenGL, LogLevelError, txt)
}
