package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain loads .env before the CLI tests so local runs pick up the same
// environment the binary would.
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}
