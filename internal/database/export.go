package database

import (
	"bufio"
	"context"
	"os"

	"clipmon/internal/apperrors"
)

// Export writes every stored content value from the database at dbPath to
// outputPath, one per line, replacing whatever was there. The output is
// only created once the store has been read successfully.
func Export(ctx context.Context, dbPath, outputPath string) (int, error) {
	repo, err := OpenReadOnly(dbPath)
	if err != nil {
		return 0, apperrors.New(apperrors.KindStore, "cannot open "+dbPath, err)
	}
	defer repo.Close()

	contents, err := repo.AllContent(ctx)
	if err != nil {
		return 0, apperrors.New(apperrors.KindStore, "cannot read "+dbPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, apperrors.New(apperrors.KindIO, "cannot open "+outputPath+" for writing", err)
	}

	w := bufio.NewWriter(f)
	for _, content := range contents {
		if _, err := w.WriteString(content + "\n"); err != nil {
			f.Close()
			return 0, apperrors.New(apperrors.KindIO, "cannot write "+outputPath, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return 0, apperrors.New(apperrors.KindIO, "cannot write "+outputPath, err)
	}
	if err := f.Close(); err != nil {
		return 0, apperrors.New(apperrors.KindIO, "cannot close "+outputPath, err)
	}

	return len(contents), nil
}
