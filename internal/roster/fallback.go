// Package roster holds the coach's fixed list of athletes, served when an
// athlete has not been synced to the database yet.
package roster

import "github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"

var fallbackAthletes = []domain.Athlete{
	{ID: "andre", Name: "André Brito", Email: "andre@abfit.com.br", Goal: "Hipertrofia"},
	{ID: "marcelly", Name: "Marcelly Bispo", Email: "marcelly@abfit.com.br", Goal: "Condicionamento"},
	{ID: "liliane", Name: "Liliane Torres", Email: "liliane@abfit.com.br", Goal: "Emagrecimento"},
	{ID: "manoel", Name: "Manoel Ferreira", Email: "manoel@abfit.com.br", Goal: "Corrida 10km"},
	{ID: "fabiana", Name: "Fabiana Costa", Email: "fabiana@abfit.com.br", Goal: "Fortalecimento"},
	{ID: "rodrigo", Name: "Rodrigo Alves", Goal: "Meia maratona"},
}

// Fallback returns a fresh copy of the fixed roster.
func Fallback() []domain.Athlete {
	athletes := make([]domain.Athlete, len(fallbackAthletes))
	copy(athletes, fallbackAthletes)
	return athletes
}
