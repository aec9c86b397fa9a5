package server

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/adrianap0607/Diorama/pkg/core"
)

const defaultConsoleLimit = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
	Source    string    `json:"source"`
}

// Console keeps the most recent server messages for the /api/console endpoint
type Console struct {
	mu       sync.Mutex
	limit    int
	messages []ConsoleMessage
}

// NewConsole creates a console holding at most limit messages
func NewConsole(limit int) *Console {
	if limit <= 0 {
		limit = defaultConsoleLimit
	}
	return &Console{limit: limit}
}

// Add appends a message, dropping the oldest when full
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append([]ConsoleMessage(nil), c.messages[over:]...)
	}
}

// Messages returns a copy of the stored messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

// WebLogger implements core.Logger by writing to the server log and a console
type WebLogger struct {
	source  string
	console *Console
}

// NewWebLogger creates a new web logger tagged with source
func NewWebLogger(source string, console *Console) core.Logger {
	return &WebLogger{
		source:  source,
		console: console,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")

	// Also write to the standard logger for server logs
	log.Printf("[%s] %s", wl.source, message)

	if wl.console != nil {
		wl.console.Add(ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
			Source:    wl.source,
		})
	}
}
