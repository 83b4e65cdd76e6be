package journal

import "oneline/internal/models"

// Colors used when a day has no entry or an entry's mood id is no longer in
// the catalog.
const (
	EmptyDayColor    = "#F4F1EA"
	UnknownMoodColor = "#CBD5E0"
	MaxLineLength    = 150
)

// Catalog is the ordered, user-editable list of moods available for tagging
// entries. Order is display order and is preserved across load/save.
type Catalog []models.Mood

// DefaultCatalog returns the built-in five moods.
func DefaultCatalog() Catalog {
	return Catalog{
		{ID: "great", Label: "Radiant", Color: "#F6AD55", Emoji: "✨"},
		{ID: "good", Label: "Content", Color: "#68D391", Emoji: "🌿"},
		{ID: "neutral", Label: "Ordinary", Color: "#63B3ED", Emoji: "☁️"},
		{ID: "low", Label: "Tired", Color: "#B794F4", Emoji: "🌙"},
		{ID: "bad", Label: "Heavy", Color: "#FC8181", Emoji: "🌧️"},
	}
}

// Resolve looks up a mood id. Entries hold soft references: the catalog may
// have been edited after an entry was created, so a miss is normal.
func (c Catalog) Resolve(id string) (models.Mood, bool) {
	for _, m := range c {
		if m.ID == id {
			return m, true
		}
	}
	return models.Mood{}, false
}

// ResolveDisplay resolves an id for rendering, degrading to a neutral
// placeholder instead of failing when the id is unknown.
func (c Catalog) ResolveDisplay(id string) models.Mood {
	if m, ok := c.Resolve(id); ok {
		return m
	}
	return models.Mood{ID: id, Label: id, Color: UnknownMoodColor}
}
