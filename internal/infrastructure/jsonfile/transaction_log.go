package jsonfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
	"github.com/tu-usuario/sims-backend/internal/domain/repository"
)

var _ repository.TransactionLog = (*TransactionLog)(nil)

// TransactionLog log de auditoría append-only sobre un archivo de texto plano,
// una línea por entrada. Nunca reescribe entradas previas.
type TransactionLog struct {
	mu   sync.Mutex
	path string
}

// NewTransactionLog construye el log sobre el archivo indicado.
func NewTransactionLog(path string) *TransactionLog {
	return &TransactionLog{path: path}
}

// Append añade una línea al final del log. El fallo de escritura se devuelve
// al llamador, que lo reporta sin revertir la mutación origen.
func (l *TransactionLog) Append(entry *entity.TransactionEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("crear directorio del log: %w", err)
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir log de transacciones: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, entry.String()); err != nil {
		return fmt.Errorf("escribir entrada del log: %w", err)
	}
	return nil
}

// Recent devuelve las últimas n líneas en orden cronológico (la más antigua
// de la ventana primero). Con menos de n entradas devuelve todas; archivo
// ausente devuelve lista vacía.
func (l *TransactionLog) Recent(n int) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("leer log de transacciones: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("leer log de transacciones: %w", err)
	}
	if n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}
