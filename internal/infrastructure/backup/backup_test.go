package backup

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDataDir(t *testing.T) (dataDir, backupDir string) {
	t.Helper()
	dataDir = t.TempDir()
	backupDir = filepath.Join(dataDir, "backups")
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "items.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "transactions.log"), []byte("línea\n"), 0o644))
	return dataDir, backupDir
}

// El zip contiene los archivos de datos y excluye al propio directorio de
// backups aunque cuelgue del directorio de datos.
func TestBackup_CreateExcluyeBackups(t *testing.T) {
	dataDir, backupDir := seedDataDir(t)
	svc := NewService(dataDir, backupDir)

	// Un backup previo no debe acabar dentro del siguiente zip
	require.NoError(t, os.MkdirAll(backupDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(backupDir, "backup_20260101_000000.zip"), []byte("x"), 0o644))

	name, err := svc.Create()
	require.NoError(t, err)
	assert.Regexp(t, `^backup_\d{8}_\d{6}\.zip$`, name)

	r, err := zip.OpenReader(filepath.Join(backupDir, name))
	require.NoError(t, err)
	defer r.Close()

	var entries []string
	for _, f := range r.File {
		entries = append(entries, f.Name)
	}
	assert.ElementsMatch(t, []string{"items.json", "transactions.log"}, entries,
		"el zip lleva los datos pero nunca los backups previos")
}

func TestBackup_ListOrdenado(t *testing.T) {
	dataDir, backupDir := seedDataDir(t)
	svc := NewService(dataDir, backupDir)

	require.NoError(t, os.MkdirAll(backupDir, 0o755))
	for _, n := range []string{"backup_20260102_000000.zip", "backup_20260101_000000.zip"} {
		require.NoError(t, os.WriteFile(filepath.Join(backupDir, n), []byte("x"), 0o644))
	}
	// Los archivos que no son zip se ignoran
	require.NoError(t, os.WriteFile(filepath.Join(backupDir, "notas.txt"), []byte("x"), 0o644))

	names, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"backup_20260101_000000.zip", "backup_20260102_000000.zip"}, names)
}

func TestBackup_ListDirectorioAusente(t *testing.T) {
	dataDir := t.TempDir()
	svc := NewService(dataDir, filepath.Join(dataDir, "backups"))

	names, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

// La rotación conserva como máximo los 10 backups más recientes.
func TestBackup_RotacionConservaDiez(t *testing.T) {
	dataDir, backupDir := seedDataDir(t)
	svc := NewService(dataDir, backupDir)

	require.NoError(t, os.MkdirAll(backupDir, 0o755))
	old := []string{
		"backup_20260101_000001.zip", "backup_20260101_000002.zip",
		"backup_20260101_000003.zip", "backup_20260101_000004.zip",
		"backup_20260101_000005.zip", "backup_20260101_000006.zip",
		"backup_20260101_000007.zip", "backup_20260101_000008.zip",
		"backup_20260101_000009.zip", "backup_20260101_000010.zip",
	}
	for _, n := range old {
		require.NoError(t, os.WriteFile(filepath.Join(backupDir, n), []byte("x"), 0o644))
	}

	_, err := svc.Create()
	require.NoError(t, err)

	names, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, names, 10, "la rotación deja exactamente diez")
	assert.NotContains(t, names, "backup_20260101_000001.zip", "el más antiguo queda eliminado")
}
