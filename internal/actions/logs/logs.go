package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/da-tools/da/internal/pattern"
	"github.com/da-tools/da/internal/ui/style"
	"github.com/da-tools/da/internal/usage"
)

const defaultLogLimit = 50

// View handles `logs [limit]`: it shows the last lines of the log file.
func (d Deps) View(values pattern.Captures) error {
	return view(values, false, d)
}

// ViewJSON handles `logs json [limit]`.
func (d Deps) ViewJSON(values pattern.Captures) error {
	return view(values, true, d)
}

func view(values pattern.Captures, jsonOutput bool, deps Deps) error {
	limit, err := parseLimit(values.String(0))
	if err != nil {
		return err
	}

	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(style.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(string(content), "\n")

	// Remove empty trailing line if present
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	start := 0
	if len(lines) > limit {
		start = len(lines) - limit
	}

	if jsonOutput {
		return viewJSON(lines[start:], deps)
	}

	for _, line := range lines[start:] {
		_, _ = deps.Println(colorizeLogLine(line))
	}

	return nil
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLogLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, usage.InvalidValue("limit", raw, "expected a positive number")
	}
	return n, nil
}

// Entry is one parsed log line.
type Entry struct {
	Timestamp string `json:"timestamp,omitempty"`
	RunID     string `json:"run_id,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
	Raw       string `json:"raw,omitempty"`
}

// logEntryRegex matches lines like: [2026-01-29 10:30:45] [1a2b3c4d] INFO: message
// The run id is optional.
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\](?:\s+\[([^\]]+)\])?\s+(DEBUG|INFO|WARN|ERROR):\s?(.*)$`)

// ParseLine splits a log line into its fields. Lines that do not follow the
// log format are returned as Raw.
func ParseLine(line string) Entry {
	m := logEntryRegex.FindStringSubmatch(line)
	if m == nil {
		return Entry{Message: line, Raw: line}
	}
	return Entry{Timestamp: m[1], RunID: m[2], Level: m[3], Message: m[4]}
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, ParseLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Tail follows the log file in real time
func (d Deps) Tail(values pattern.Captures) error {
	return tail(values, d)
}

func tail(_ pattern.Captures, deps Deps) error {
	logPath := deps.LogFilePath()

	// Never create the file here; with enable_log=false it stays absent
	file, err := deps.OpenFile(logPath, os.O_RDONLY, 0)
	if os.IsNotExist(err) {
		_, _ = deps.Println(style.Muted("No log file found at " + logPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(style.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println("")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return follow(ctx, bufio.NewReader(file), 500*time.Millisecond, deps)
}

// follow prints lines from r as they appear until ctx is done.
func follow(ctx context.Context, r *bufio.Reader, interval time.Duration, deps Deps) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var partial string
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		chunk, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		partial += chunk

		if strings.HasSuffix(partial, "\n") {
			_, _ = deps.Println(colorizeLogLine(strings.TrimSuffix(partial, "\n")))
			partial = ""
			continue
		}

		// EOF - wait for next tick
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Clear handles `logs clear`: it empties the log file.
func (d Deps) Clear(values pattern.Captures) error {
	return clearLog(values, d)
}

func clearLog(_ pattern.Captures, deps Deps) error {
	logPath := deps.LogFilePath()

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(style.Success("Log file cleared"))
	return nil
}

// colorizeLogLine adds color to log lines based on level
func colorizeLogLine(line string) string {
	return colorizeLevel(ParseLine(line).Level, line)
}

func colorizeLevel(level, text string) string {
	switch level {
	case "ERROR":
		return style.Error(text)
	case "WARN":
		return style.Warning(text)
	case "INFO":
		return style.Info(text)
	case "DEBUG":
		return style.Muted(text)
	default:
		return text
	}
}
