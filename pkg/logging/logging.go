package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"epctl/pkg/colors"
	"epctl/pkg/security"
)

var (
	fileLogger  *log.Logger
	logFile     *os.File // Store file handle for proper cleanup
	loggerMutex sync.RWMutex
)

func init() {
	// Initialize file logger
	setupFileLogger()
}

// getDefaultLogDir returns platform-appropriate default log directory
func getDefaultLogDir(homeDir string) string {
	switch runtime.GOOS {
	case "windows":
		// Windows: Use %LOCALAPPDATA%\epctl\logs or fallback to home
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, "epctl", "logs")
		}
		return filepath.Join(homeDir, "AppData", "Local", "epctl", "logs")
	case "darwin":
		// macOS: Use ~/Library/Logs/epctl
		return filepath.Join(homeDir, "Library", "Logs", "epctl")
	default:
		// Linux and others: Use ~/.local/share/epctl/logs (XDG Base Directory)
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, "epctl", "logs")
		}
		return filepath.Join(homeDir, ".local", "share", "epctl", "logs")
	}
}

// getFilePermissions returns platform-appropriate file permissions
func getFilePermissions() os.FileMode {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix-style permissions
		return 0666
	}
	return 0600
}

// getDirPermissions returns platform-appropriate directory permissions
func getDirPermissions() os.FileMode {
	if runtime.GOOS == "windows" {
		// Windows doesn't use Unix-style permissions
		return 0777
	}
	return 0755
}

// setupFileLogger creates a timestamped log file with configurable directory
func setupFileLogger() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine home directory, file logging disabled: %v\n", err)
		return
	}

	// Allow configurable log directory via environment variable
	logDirPath := os.Getenv("EPCTL_LOG_DIR")
	if logDirPath == "" {
		// Use platform-appropriate default location
		logDirPath = getDefaultLogDir(homeDir)
	}

	// Validate log directory path to prevent directory traversal attacks
	if security.ContainsUnsafePath(logDirPath) {
		fmt.Fprintf(os.Stderr, "Warning: Invalid log directory path %s, using default location\n", logDirPath)
		logDirPath = getDefaultLogDir(homeDir)
	}

	if err := os.MkdirAll(logDirPath, getDirPermissions()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create log directory %s, file logging disabled: %v\n", logDirPath, err)
		return
	}

	logFilePath := filepath.Join(logDirPath, fmt.Sprintf("epctl-%s.log", time.Now().Format("2006-01-02")))
	// #nosec G304 - logDirPath is validated above and log filename is controlled by application
	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, getFilePermissions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create/open log file %s, file logging disabled: %v\n", logFilePath, err)
		return
	}

	loggerMutex.Lock()
	// Close previous file if it exists
	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error closing previous log file: %v\n", err)
		}
	}
	logFile = file
	fileLogger = log.New(file, "", 0) // No prefix, we'll add our own timestamp
	loggerMutex.Unlock()
}

// CloseLogger properly closes the log file to prevent resource leaks
// Should be called during application shutdown
func CloseLogger() {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Error closing log file: %v\n", err)
		}
		logFile = nil
		fileLogger = nil
	}
}

func getTimestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

// logToFile writes a timestamped message to the log file (thread-safe)
func logToFile(level string, message string) {
	loggerMutex.RLock()
	logger := fileLogger
	loggerMutex.RUnlock()

	if logger != nil {
		timestamp := getTimestamp()
		logger.Printf("%s [%s] %s", timestamp, level, message)
	}
}

// LogInfo logs an info message - colored to console, timestamped to file
func LogInfo(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = colors.Success.Printf("[INFO] %s\n", message)
	logToFile("INFO", message)
}

// LogWarn logs a warning message - colored to console, timestamped to file
func LogWarn(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = colors.Warning.Printf("[WARN] %s\n", message)
	logToFile("WARN", message)
}

// LogError logs an error message - colored to console, timestamped to file
func LogError(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = colors.Error.Printf("[ERROR] %s\n", message)
	logToFile("ERROR", message)
}

// LogDebug logs a debug message - colored to console, timestamped to file
func LogDebug(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = colors.Data.Printf("[DEBUG] %s\n", message)
	logToFile("DEBUG", message)
}

// LogSuccess logs a success message - colored to console, timestamped to file
func LogSuccess(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	_, _ = colors.Success.Printf("[SUCCESS] %s\n", message)
	logToFile("SUCCESS", message)
}

// Logger provides a leveled structured-ish logger over the centralized output
type Logger struct {
	debugEnabled bool
	noOp         bool
}

// NewLogger creates a new logger instance with debug level control
func NewLogger(debug bool) *Logger {
	return &Logger{
		debugEnabled: debug,
	}
}

// NewNoOpLogger creates a logger that discards all output
func NewNoOpLogger() *Logger {
	return &Logger{
		debugEnabled: false,
		noOp:         true,
	}
}

// formatFields converts key-value pairs to a formatted string
func (l *Logger) formatFields(fields ...interface{}) string {
	if len(fields) == 0 {
		return ""
	}

	var parts []string
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			parts = append(parts, fmt.Sprintf("%v=%v", fields[i], fields[i+1]))
		} else {
			parts = append(parts, fmt.Sprintf("%v=<no_value>", fields[i]))
		}
	}

	if len(parts) > 0 {
		return " | " + strings.Join(parts, " ")
	}
	return ""
}

// Info logs an info message using centralized logging
func (l *Logger) Info(msg string, fields ...interface{}) {
	if l.noOp {
		return
	}
	LogInfo("%s%s", msg, l.formatFields(fields...))
}

// Debug logs a debug message using centralized logging (respects debug flag)
func (l *Logger) Debug(msg string, fields ...interface{}) {
	if l.noOp || !l.debugEnabled {
		return
	}
	LogDebug("%s%s", msg, l.formatFields(fields...))
}

// Warn logs a warning message using centralized logging
func (l *Logger) Warn(msg string, fields ...interface{}) {
	if l.noOp {
		return
	}
	LogWarn("%s%s", msg, l.formatFields(fields...))
}

// Error logs an error message using centralized logging
func (l *Logger) Error(msg string, fields ...interface{}) {
	if l.noOp {
		return
	}
	LogError("%s%s", msg, l.formatFields(fields...))
}
