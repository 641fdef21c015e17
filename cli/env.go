package cli

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/ardnew/msgfmt/log"
)

// loadEnv adds the variables of each existing dotenv file in paths to the
// process environment. Variables already set are kept, and earlier files
// take precedence over later ones.
func loadEnv(ctx context.Context, paths ...string) {
	for _, path := range paths {
		err := godotenv.Load(path)

		switch {
		case err == nil:
			log.DebugContext(ctx, "loaded environment", slog.String("file", path))

		case errors.Is(err, fs.ErrNotExist):

		default:
			log.WarnContext(ctx, "invalid environment file",
				slog.String("file", path),
				slog.Any("error", err),
			)
		}
	}
}
