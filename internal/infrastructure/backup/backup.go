// Package backup comprime el directorio de datos en archivos zip con
// rotación: se conservan los 10 backups más recientes.
package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const keepBackups = 10

// Service crea y lista backups comprimidos del directorio de datos.
type Service struct {
	dataDir   string
	backupDir string
}

// NewService construye el servicio. backupDir puede colgar de dataDir; en ese
// caso se excluye a sí mismo del zip.
func NewService(dataDir, backupDir string) *Service {
	return &Service{dataDir: dataDir, backupDir: backupDir}
}

// Create comprime el directorio de datos completo en
// backup_<yyyyMMdd_HHmmss>.zip y aplica la rotación. Devuelve el nombre del
// archivo creado.
func (s *Service) Create() (string, error) {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de backups: %w", err)
	}
	name := "backup_" + time.Now().Format("20060102_150405") + ".zip"
	path := filepath.Join(s.backupDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear archivo de backup: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	absBackup, _ := filepath.Abs(s.backupDir)
	err = filepath.Walk(s.dataDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		abs, _ := filepath.Abs(p)
		// El directorio de backups no entra en el backup
		if info.IsDir() {
			if abs == absBackup {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(s.dataDir, p)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		src, err := os.Open(p)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		zw.Close()
		return "", fmt.Errorf("comprimir datos: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("cerrar zip: %w", err)
	}

	s.pruneOld()
	return name, nil
}

// List nombres de los backups disponibles, ordenados (el timestamp en el
// nombre hace que el orden lexicográfico sea cronológico).
func (s *Service) List() ([]string, error) {
	entries, err := os.ReadDir(s.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("listar backups: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".zip") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// pruneOld elimina los backups más antiguos por encima del límite de retención.
func (s *Service) pruneOld() {
	names, err := s.List()
	if err != nil || len(names) <= keepBackups {
		return
	}
	for _, name := range names[:len(names)-keepBackups] {
		_ = os.Remove(filepath.Join(s.backupDir, name))
	}
}
