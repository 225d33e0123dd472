// ============================================================================
// BookFab - Text-to-Speech Workspace
// ============================================================================
//
// Package:     voice
// Description: Built-in voice catalog and YAML catalog loading
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package voice

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LanguageJapanese triggers catalog augmentation
const LanguageJapanese = "Japanese"

// DefaultCatalog returns the built-in catalog shown when no catalog file is
// configured. A fresh slice is returned on every call.
func DefaultCatalog() []Voice {
	return clone([]Voice{
		{ID: "en-amelia", Name: "Amelia", Gender: GenderFemale, Age: "Young Adult", Language: "English",
			Tags: []string{"Calm", "Narration"}, Avatar: "https://images.bookfab.app/avatars/amelia.png"},
		{ID: "en-oliver", Name: "Oliver", Gender: GenderMale, Age: "Middle Aged", Language: "English",
			Tags: []string{"Deep", "Narration", "Warm"}, Avatar: "https://images.bookfab.app/avatars/oliver.png"},
		{ID: "en-sophia", Name: "Sophia", Gender: GenderFemale, Age: "Middle Aged", Language: "English",
			Tags: []string{"Bright", "News"}, Avatar: "https://images.bookfab.app/avatars/sophia.png"},
		{ID: "en-jack", Name: "Jack", Gender: GenderMale, Age: "Young Adult", Language: "English",
			Tags: []string{"Energetic", "Advertising"}, Avatar: "avatars/jack.png"},
		{ID: "en-margaret", Name: "Margaret", Gender: GenderFemale, Age: "Senior", Language: "English",
			Tags: []string{"Calm", "Storytelling", "Warm"}, Avatar: ""},
		{ID: "ja-sakura", Name: "Sakura", Gender: GenderFemale, Age: "Young Adult", Language: LanguageJapanese,
			Tags: []string{"Bright", "Narration"}, Avatar: "https://images.bookfab.app/avatars/sakura.png"},
	})
}

// JapaneseSupplement is the fixed set merged into catalogs that already
// contain a Japanese voice.
func JapaneseSupplement() []Voice {
	return clone([]Voice{
		{ID: "ja-haruto", Name: "Haruto", Gender: GenderMale, Age: "Young Adult", Language: LanguageJapanese,
			Tags: []string{"Calm", "Narration"}, Avatar: "https://images.bookfab.app/avatars/haruto.png"},
		{ID: "ja-yui", Name: "Yui", Gender: GenderFemale, Age: "Child", Language: LanguageJapanese,
			Tags: []string{"Bright", "Energetic"}, Avatar: "https://images.bookfab.app/avatars/yui.png"},
		{ID: "ja-kenji", Name: "Kenji", Gender: GenderMale, Age: "Middle Aged", Language: LanguageJapanese,
			Tags: []string{"Deep", "News"}, Avatar: "https://images.bookfab.app/avatars/kenji.png"},
		{ID: "ja-aiko", Name: "Aiko", Gender: GenderFemale, Age: "Senior", Language: LanguageJapanese,
			Tags: []string{"Storytelling", "Warm"}, Avatar: "https://images.bookfab.app/avatars/aiko.png"},
	})
}

// catalogFile is the on-disk layout of a catalog seed file
type catalogFile struct {
	Voices []Voice `yaml:"voices"`
}

// LoadCatalog reads a YAML catalog file and validates it
func LoadCatalog(path string) ([]Voice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML catalog content
func ParseCatalog(data []byte) ([]Voice, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogInvalid, err)
	}
	if len(f.Voices) == 0 {
		return nil, ErrCatalogEmpty
	}
	if err := Validate(f.Voices); err != nil {
		return nil, err
	}
	return f.Voices, nil
}

// MarshalCatalog encodes voices in the catalog file layout
func MarshalCatalog(voices []Voice) ([]byte, error) {
	return yaml.Marshal(catalogFile{Voices: voices})
}

func clone(voices []Voice) []Voice {
	out := make([]Voice, len(voices))
	for i, v := range voices {
		v.Tags = append([]string(nil), v.Tags...)
		out[i] = v
	}
	return out
}
