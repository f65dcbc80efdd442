package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetFilename strips directory components and the extension from a path.
func GetFilename(filePath string) string {
	base := filepath.Base(filePath)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

// OpenFile creates the output file for one saved quantity, either inside a
// per-model directory or with the model name as prefix.
func OpenFile(makeDir bool, outputPath string, modelName, fileSuffix string) (*os.File, error) {
	if makeDir && modelName != "" && modelName != "." {
		if err := os.MkdirAll(outputPath+modelName, 0750); err != nil {
			return nil, err
		}
		return os.Create(outputPath + modelName + "/" + fileSuffix + ".txt")
	}
	return os.Create(outputPath + modelName + "_" + fileSuffix + ".txt")
}
