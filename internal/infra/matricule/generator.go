// Package matricule generates the unique staff codes assigned at registration.
package matricule

import (
	"fmt"
	"strings"

	"staffauth/config"
	"staffauth/internal/domain/service"

	"github.com/google/uuid"
)

// generator produces matricules of the form PREFIX-XXXXXXXX, where the tail
// is derived from a random UUID. Uniqueness is enforced by the users table's
// unique constraint; the 32 bits of entropy here make collisions a retry
// curiosity rather than a design concern.
type generator struct {
	prefix string
}

// NewGenerator is the constructor for the matricule generator.
func NewGenerator(cfg *config.Config) service.MatriculeGenerator {
	return &generator{prefix: cfg.Auth.MatriculePrefix}
}

// Generate returns a new matricule, e.g. "STF-9F86D081".
func (g *generator) Generate() string {
	id := uuid.New()

	return fmt.Sprintf("%s-%s", g.prefix, strings.ToUpper(id.String()[:8]))
}
