package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr string

	// TaskInboxSize bounds the in-memory task inbox used for local runs.
	TaskInboxSize int

	// ShutdownGrace is how long in-flight work may finish on SIGINT.
	ShutdownGrace time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("MOTTAK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:          addr,
		TaskInboxSize: 256,
		ShutdownGrace: 10 * time.Second,
	}
}
