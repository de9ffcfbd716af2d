package main

import (
	"io"
	"os"
	"time"
)

// Environment holds injectable dependencies for the CLI.
// Tests swap the writers and the clock.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv returns production dependencies.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
