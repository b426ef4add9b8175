// Package jsonfile implementa los adaptadores de persistencia sobre archivos
// JSON locales: un archivo por colección, snapshot completo en cada escritura.
// Diseño monoproceso y monoescritor; cada repositorio serializa sus propias
// operaciones con un mutex (un lock exclusivo por archivo de respaldo).
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Store persistencia genérica de snapshots de una colección en un archivo JSON.
// El esquema del archivo es explícito (tags json de las entidades), estable
// frente a cambios de representación en memoria.
type Store[T any] struct {
	path string
}

// NewStore construye un store sobre el archivo indicado.
func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Load lee el snapshot completo. Archivo ausente o ilegible degrada a
// colección vacía (se registra, nunca se propaga como error fatal: el primer
// arranque no tiene datos).
func (s *Store[T]) Load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("file", s.path).Msg("no se pudo leer el archivo de datos, se inicia vacío")
		}
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		log.Warn().Err(err).Str("file", s.path).Msg("archivo de datos corrupto, se inicia vacío")
		return []T{}
	}
	return records
}

// Save serializa la colección completa sobrescribiendo el snapshot anterior.
// Escribe a un archivo temporal y renombra: el snapshot previo queda intacto
// hasta que la escritura nueva se completa.
func (s *Store[T]) Save(records []T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar colección: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("reemplazar snapshot: %w", err)
	}
	return nil
}
