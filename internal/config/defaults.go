package config

import (
	_ "embed"
)

//go:embed defaults/worlds.yaml
var defaultWorldsYAML []byte

// DefaultCatalog returns the built-in catalog for worlds 6 to 10.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Worlds: []World{
			{
				ID:         6,
				Name:       "Marécages Mystiques",
				Theme:      "mystic_swamps",
				TileTypes:  []string{"dew", "leaf", "crystal"},
				Colors:     []string{"#20B2AA", "#48CAE4", "#90E0EF"},
				Icon:       "water_drop",
				Difficulty: DifficultyHard,
			},
			{
				ID:         7,
				Name:       "Terres Ardentes",
				Theme:      "burning_lands",
				TileTypes:  []string{"sun", "gem", "flower"},
				Colors:     []string{"#DC143C", "#FF4500", "#FF6347"},
				Icon:       "local_fire_department",
				Difficulty: DifficultyHard,
			},
			{
				ID:         8,
				Name:       "Glacier Éternel",
				Theme:      "eternal_glacier",
				TileTypes:  []string{"crystal", "moon", "dew"},
				Colors:     []string{"#B0E0E6", "#E0FFFF", "#F0F8FF"},
				Icon:       "ac_unit",
				Difficulty: DifficultyExpert,
			},
			{
				ID:         9,
				Name:       "Arc-en-Ciel Perdu",
				Theme:      "lost_rainbow",
				TileTypes:  []string{"flower", "sun", "moon", "gem"},
				Colors:     []string{"#FF1493", "#00BFFF", "#32CD32", "#FFD700"},
				Icon:       "palette",
				Difficulty: DifficultyExpert,
			},
			{
				ID:         10,
				Name:       "Jardin Céleste",
				Theme:      "celestial_garden",
				TileTypes:  []string{"gem", "sun", "moon", "crystal"},
				Colors:     []string{"#FFD700", "#C0C0C0", "#87CEEB"},
				Icon:       "star",
				Difficulty: DifficultyExpert,
			},
		},
		Themes: map[string]Theme{
			"mystic_swamps": {
				Intro: "Naviguez dans les eaux troubles de ce marécage mystique et collectez",
				LevelNames: []string{
					"Rosée Mystique", "Eaux Troubles", "Marécage Enchanté",
					"Brouillard Magique", "Nénuphars Perdus", "Sérénité Aquatique",
					"Reflets d'Eau", "Profondeurs Légendaires", "Vapeurs Mystiques", "Harmonie Aquatique",
				},
			},
			"burning_lands": {
				Intro: "Survivez à la chaleur intense de ces terres volcaniques et récupérez",
				LevelNames: []string{
					"Lave Ardente", "Terres Brûlantes", "Volcan Actif",
					"Flamme Éternelle", "Cendres Volcaniques", "Chaleur Extrême",
					"Éruption Magmatique", "Feu Infernal", "Cratère Explosif", "Pouvoir Volcanique",
				},
			},
			"eternal_glacier": {
				Intro: "Bravez le froid glacial de cette étendue blanche et collectez",
				LevelNames: []string{
					"Glace Pure", "Cristaux de Glace", "Blizzard Éternel",
					"Reflets Glacés", "Tempête de Neige", "Froid Polaire",
					"Aurore Boréale", "Cristaux Givrés", "Vent Glacial", "Perfection Glacée",
				},
			},
			"lost_rainbow": {
				Intro: "Retrouvez les couleurs perdues de cet arc-en-ciel légendaire et récupérez",
				LevelNames: []string{
					"Arc Perdu", "Couleurs Dispersées", "Spectre Magique",
					"Prisme Brisé", "Palette Céleste", "Teintes Perdues",
					"Mirage Coloré", "Spectre Enchanté", "Couleurs Éternelles", "Harmonie Chromatique",
				},
			},
			"celestial_garden": {
				Intro: "Explorez ce jardin où les étoiles fleurissent et collectez",
				LevelNames: []string{
					"Étoiles Fleuries", "Jardin Céleste", "Constellation Vivante",
					"Cosmos Bloom", "Galaxie Florale", "Univers Végétal",
					"Nébuleuse Enchantée", "Système Solaire Bloom", "Voie Lactée Magique", "Infini Céleste",
				},
			},
		},
		TileTargets: map[string]int{
			"flower":  25,
			"leaf":    28,
			"crystal": 20,
			"seed":    30,
			"dew":     22,
			"sun":     18,
			"moon":    15,
			"gem":     12,
		},
	}
}
