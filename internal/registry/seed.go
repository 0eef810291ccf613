package registry

import (
	"time"

	"github.com/dsakiyama/motopatio/internal/models"
)

// Seed returns the demo account every fresh install starts with. It exists
// so the app is usable before anyone registers; the merge policy in Load
// keeps it authoritative over a persisted user with the same CPF.
func Seed() []models.User {
	now := time.Now()
	return []models.User{
		{
			ID:        0,
			Name:      "Daniel Saburo Akiyama",
			CPF:       "123.456.789-09",
			Password:  "senha123",
			Token:     "123",
			BirthDate: now,
			CreatedAt: now,
		},
	}
}
