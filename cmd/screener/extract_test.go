package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCommand_MissingInput(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --text-file or --url must be provided")
}

func TestExtractCommand_BothInputsProvided(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract", "--text-file", "resume.txt", "--url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestExtractCommand_TextFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	err := os.WriteFile(resumePath, []byte("Backend engineer with Python and PostgreSQL experience."), 0644)
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "extract", "--text-file", resumePath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "python")
	assert.Contains(t, string(output), "postgresql")
}

func TestExtractCommand_CustomSkill(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumePath := filepath.Join(tmpDir, "resume.txt")
	err := os.WriteFile(resumePath, []byte("Research on quantum computing applications."), 0644)
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "extract", "--text-file", resumePath, "--skill", "quantum computing")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "command should succeed: %s", string(output))
	assert.Contains(t, string(output), "quantum computing")
}

func TestExtractCommand_InvalidTextFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "extract", "--text-file", "/nonexistent/resume.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "file not found")
}
