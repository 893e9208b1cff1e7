package service

import (
	"context"

	"github.com/stocklight/inventory-tracker/internal/models"
)

// ThemeForHour picks the startup theme from the wall clock: daytime hours
// (6 through 17) get the dark theme, the rest of the day gets light.
func ThemeForHour(hour int) models.Theme {
	if hour >= 6 && hour < 18 {
		return models.ThemeDark
	}

	return models.ThemeLight
}

func (s *inventoryService) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theme
}

// ToggleTheme flips the active theme and persists it alongside the products.
func (s *inventoryService) ToggleTheme(ctx context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = s.theme.Flip()

	if err := s.persist(ctx); err != nil {
		return s.theme, err
	}

	return s.theme, nil
}
