// Package notify mantiene el buffer de notificaciones operativas del sistema.
// Es una instancia explícita inyectada a quien la necesite (no estado global)
// con ventana acotada: por encima del límite se descarta la más antigua.
package notify

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/sims-backend/internal/domain/entity"
)

const defaultWindow = 50

// Niveles de notificación.
const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
	LevelInfo     = "INFO"
)

// Center buffer acotado de notificaciones formateadas.
type Center struct {
	mu     sync.Mutex
	window int
	lines  []string
	now    func() time.Time
}

// NewCenter construye el centro con la ventana por defecto (50 entradas).
func NewCenter() *Center {
	return &Center{window: defaultWindow, now: time.Now}
}

// Add registra una notificación; si la ventana está llena se descarta la más antigua.
func (c *Center) Add(level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(level, message)
}

func (c *Center) add(level, message string) {
	line := fmt.Sprintf("[%s] %s: %s", c.now().Format("2006-01-02 15:04"), level, message)
	c.lines = append(c.lines, line)
	if len(c.lines) > c.window {
		c.lines = c.lines[len(c.lines)-c.window:]
	}
}

// Recent devuelve las últimas n notificaciones en orden cronológico.
func (c *Center) Recent(n int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	start := len(c.lines) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(c.lines)-start)
	copy(out, c.lines[start:])
	return out
}

// GenerateDaily rederiva las notificaciones de stock y caducidad del día:
// elimina las entradas fechadas hoy y vuelve a clasificar el snapshot.
func (c *Center) GenerateDaily(items []*entity.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Se compara contra el prefijo de timestamp: el texto del mensaje puede
	// contener fechas y no debe influir
	todayPrefix := "[" + c.now().Format("2006-01-02")
	kept := c.lines[:0]
	for _, line := range c.lines {
		if !strings.HasPrefix(line, todayPrefix) {
			kept = append(kept, line)
		}
	}
	c.lines = kept

	now := c.now()
	for _, it := range items {
		switch {
		case it.IsOutOfStock():
			c.add(LevelCritical, it.Name+" is out of stock")
		case it.IsLowStock():
			c.add(LevelWarning, fmt.Sprintf("%s is running low (Qty: %d)", it.Name, it.Quantity))
		}
		switch {
		case it.IsExpired(now):
			c.add(LevelCritical, it.Name+" has expired")
		case it.IsExpiring(now):
			c.add(LevelWarning, it.Name+" expires soon")
		}
	}
}
