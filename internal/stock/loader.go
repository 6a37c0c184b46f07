package stock

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for manifests on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based manifest loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "stock-loader").Logger(),
	}
}

// Load reads a manifest from the local file system.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Manifest, error) {
	l.logger.Info().Str("file", filePath).Msg("loading stock manifest")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open stock manifest")
		return nil, fmt.Errorf("failed to open stock manifest %s: %w", filePath, err)
	}
	defer file.Close()

	m, err := decode(ctx, file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse stock manifest")
		return nil, fmt.Errorf("failed to parse stock manifest %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products", len(m.Products)).
		Int("denominations", len(m.Change)).
		Msg("stock manifest loaded")

	return m, nil
}
