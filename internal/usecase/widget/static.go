package widget

import (
	"newtab-feed/internal/domain/catalog"
	"newtab-feed/internal/domain/entity"
	"newtab-feed/internal/usecase/fetch"
)

// Games returns the game links.
func (s *Service) Games() []entity.Game {
	return catalog.Games()
}

// Gradients returns every gradient preset.
func (s *Service) Gradients() []entity.Gradient {
	return catalog.Gradients()
}

// RandomGradient returns one preset picked at random.
func (s *Service) RandomGradient() entity.Gradient {
	g, _ := fetch.PickRandom(catalog.Gradients(), s.picker)
	return g
}
