package models

import "time"

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Flip returns the opposite theme.
func (t Theme) Flip() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// Snapshot is the persisted unit: the whole collection plus the active theme,
// serialized as one value under one key.
type Snapshot struct {
	Products    []Product `json:"products"`
	Theme       Theme     `json:"theme"`
	LastUpdated time.Time `json:"last_updated"`
}

type Stats struct {
	TotalItems int64   `json:"total_items"`
	TotalValue float64 `json:"total_value"`
}
