package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// OutputManager handles where exported files are written
type OutputManager struct {
	BaseOutputDir string
}

// NewOutputManager creates a new output manager
func NewOutputManager(baseOutputDir string) *OutputManager {
	if baseOutputDir == "" {
		baseOutputDir = "."
	}
	return &OutputManager{
		BaseOutputDir: baseOutputDir,
	}
}

// CreateRunDir creates a directory for one export run.
// An empty runID means files go straight into the base directory.
func (om *OutputManager) CreateRunDir(runID string) (string, error) {
	dir := om.BaseOutputDir
	if runID != "" {
		dir = filepath.Join(om.BaseOutputDir, runID)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	return dir, nil
}

// GetOutputFilePath generates a full path for an output file
func (om *OutputManager) GetOutputFilePath(runID, fileName string) (string, error) {
	dir, err := om.CreateRunDir(runID)
	if err != nil {
		return "", err
	}

	// Clean the filename to remove any path separators
	return filepath.Join(dir, filepath.Base(fileName)), nil
}

// WriteFile writes data to fileName inside the run directory and returns the path
func (om *OutputManager) WriteFile(runID, fileName string, data []byte) (string, error) {
	path, err := om.GetOutputFilePath(runID, fileName)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// GetFileSize returns the size of a file in bytes
func (om *OutputManager) GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fileInfo.Size(), nil
}
