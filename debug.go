package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const debugLogName = "blocktris-debug.log"

var (
	debugEnabled bool
	debugMu      sync.Mutex
	debugFile    *os.File
	debugPath    = filepath.Join(os.TempDir(), debugLogName)
)

func EnableDebugLogging(enabled bool) {
	debugMu.Lock()
	debugEnabled = enabled
	debugMu.Unlock()
}

// SetDebugLogPath redirects the log. It must be called before the first write.
func SetDebugLogPath(path string) {
	if path == "" {
		return
	}
	debugMu.Lock()
	debugPath = path
	debugMu.Unlock()
}

func DebugLogf(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if !debugEnabled {
		return
	}
	if debugFile == nil {
		file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		debugFile = file
	}
	timestamp := time.Now().Format(time.RFC3339)
	message := fmt.Sprintf(format, args...)
	message = strings.ReplaceAll(message, "\n", " ")
	_, _ = fmt.Fprintf(debugFile, "%s %s\n", timestamp, message)
}

func CloseDebugLog() {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugFile != nil {
		_ = debugFile.Close()
		debugFile = nil
	}
}
