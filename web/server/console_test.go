package server

import (
	"fmt"
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	console := NewConsole(10)
	logger := NewWebLogger("render", console)

	logger.Printf("%s\n", "Test log message")

	messages := console.Messages()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	msg := messages[0]
	if msg.Message != "Test log message" {
		t.Errorf("Expected trimmed message, got '%s'", msg.Message)
	}
	if msg.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", msg.Level)
	}
	if msg.Source != "render" {
		t.Errorf("Expected source 'render', got '%s'", msg.Source)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestWebLogger_MultipleMessages(t *testing.T) {
	console := NewConsole(10)
	logger := NewWebLogger("render", console)

	expected := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range expected {
		logger.Printf("%s\n", msg)
	}

	messages := console.Messages()
	if len(messages) != len(expected) {
		t.Fatalf("Expected %d messages, got %d", len(expected), len(messages))
	}
	for i, want := range expected {
		if messages[i].Message != want {
			t.Errorf("Message %d: expected '%s', got '%s'", i, want, messages[i].Message)
		}
	}
}

func TestConsole_DropsOldest(t *testing.T) {
	console := NewConsole(3)
	for i := 0; i < 5; i++ {
		console.Add(ConsoleMessage{Message: fmt.Sprintf("m%d", i)})
	}

	messages := console.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	if messages[0].Message != "m2" || messages[2].Message != "m4" {
		t.Errorf("Expected m2..m4, got %v", messages)
	}
}

func TestConsole_DefaultLimit(t *testing.T) {
	console := NewConsole(0)
	if console.limit != defaultConsoleLimit {
		t.Errorf("Expected limit %d, got %d", defaultConsoleLimit, console.limit)
	}
}

func TestWebLogger_NilConsole(t *testing.T) {
	logger := NewWebLogger("render", nil)
	logger.Printf("no console attached\n")
}
