package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dmitrijs2005/calamaunido/internal/filex"
)

// OpenEvidence downloads evidence n (1-based) of the shown publication into
// the download directory and prints where it was saved.
func (a *App) OpenEvidence(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.selected.Evidencias) {
		a.println("Uso: open <n>")
		return err
	}
	archivo := a.selected.Evidencias[n-1].Archivo

	base, name := "", a.config.DownloadDir
	if filepath.IsAbs(name) {
		base, name = name, ""
	}
	dir, err := filex.EnsureDir(base, name)
	if err != nil {
		a.log.Error(ctx, "creating download dir", "error", err)
		return err
	}

	dest := filepath.Join(dir, fmt.Sprintf("%d-%d-%s", a.selected.ID, n, filex.BaseName(archivo)))
	if err := a.api.DownloadEvidence(ctx, archivo, dest); err != nil {
		a.log.Error(ctx, "downloading evidence", "archivo", archivo, "error", err)
		a.println("No se pudo abrir la imagen")
		return err
	}

	a.println("Imagen guardada en " + dest)
	return nil
}
