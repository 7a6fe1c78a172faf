package palette

import (
	"slices"
	"strings"

	"github.com/jmylchreest/blockhue/internal/colour"
)

// themedGradient is a fixed list of anchor colours run through the gradient
// engine.
type themedGradient struct {
	title       string
	description string
	theme       Theme
	anchors     []colour.Colour
}

// blockRow is one block in a biome or style table with its fixed role.
type blockRow struct {
	id   string
	role Role
}

// blockSet is a named list of blocks.
type blockSet struct {
	title       string
	description string
	rows        []blockRow
}

func anchors(hexes ...string) []colour.Colour {
	out := make([]colour.Colour, len(hexes))
	for i, h := range hexes {
		out[i] = colour.MustParseHex(h)
	}
	return out
}

var themedGradients = map[string]themedGradient{
	"sunset": {
		title:       "Sunset",
		description: "Warm reds and oranges fading through gold and violet into midnight blue",
		theme:       Gradient,
		anchors:     anchors("#FF5E4D", "#FF9A00", "#FFCE54", "#A35EC3", "#191970"),
	},
	"ocean": {
		title:       "Ocean Depths",
		description: "Sky blue shallows sinking into the abyss",
		theme:       Gradient,
		anchors:     anchors("#87CEEB", "#0077BE", "#0052A4", "#00274D", "#001428"),
	},
	"forest": {
		title:       "Forest Canopy",
		description: "Bright leaf greens darkening to the forest floor",
		theme:       Gradient,
		anchors:     anchors("#ADFF2F", "#32CD32", "#228B22", "#006400", "#191919"),
	},
	"fire": {
		title:       "Fire",
		description: "Flame yellow through orange and crimson to ember red",
		theme:       Gradient,
		anchors:     anchors("#FFFF00", "#FFA500", "#FF4500", "#DC143C", "#8B0000"),
	},
	"aurora": {
		title:       "Aurora",
		description: "Night sky lit by teal, green and violet curtains",
		theme:       Gradient,
		anchors:     anchors("#0A1F44", "#1B998B", "#7BE495", "#C77DFF", "#3C096C"),
	},
	"autumn": {
		title:       "Autumn",
		description: "Turning leaves from gold and orange to rust and bark brown",
		theme:       Seasonal,
		anchors:     anchors("#F4D35E", "#EE964B", "#F95738", "#A23B2A", "#5B3A29"),
	},
}

var naturalSets = map[string]blockSet{
	"forest": {
		title:       "Forest Biome",
		description: "Natural forest colors with browns, greens, and earth tones",
		rows: []blockRow{
			{"minecraft:oak_log", Primary},
			{"minecraft:oak_leaves", Secondary},
			{"minecraft:grass_block", Secondary},
			{"minecraft:coarse_dirt", Secondary},
			{"minecraft:moss_block", Secondary},
			{"minecraft:fern", Accent},
		},
	},
	"desert": {
		title:       "Desert Biome",
		description: "Warm sandy colors and sun-baked earth tones",
		rows: []blockRow{
			{"minecraft:sand", Primary},
			{"minecraft:sandstone", Secondary},
			{"minecraft:smooth_sandstone", Secondary},
			{"minecraft:cut_sandstone", Secondary},
			{"minecraft:red_sand", Secondary},
			{"minecraft:terracotta", Accent},
		},
	},
	"ocean": {
		title:       "Ocean Biome",
		description: "Cool blues and aquatic colors for underwater builds",
		rows: []blockRow{
			{"minecraft:water", Primary},
			{"minecraft:prismarine", Secondary},
			{"minecraft:dark_prismarine", Secondary},
			{"minecraft:sea_lantern", Secondary},
			{"minecraft:kelp", Secondary},
			{"minecraft:sand", Accent},
		},
	},
	"mountain": {
		title:       "Mountain Biome",
		description: "Rocky grays and mineral tones for mountainous terrain",
		rows: []blockRow{
			{"minecraft:stone", Primary},
			{"minecraft:cobblestone", Secondary},
			{"minecraft:andesite", Secondary},
			{"minecraft:granite", Secondary},
			{"minecraft:diorite", Secondary},
			{"minecraft:gravel", Accent},
		},
	},
	"nether": {
		title:       "Nether Dimension",
		description: "Dark reds, blacks, and otherworldly colors",
		rows: []blockRow{
			{"minecraft:netherrack", Primary},
			{"minecraft:nether_bricks", Secondary},
			{"minecraft:blackstone", Secondary},
			{"minecraft:crimson_planks", Secondary},
			{"minecraft:warped_planks", Secondary},
			{"minecraft:soul_sand", Accent},
		},
	},
	"end": {
		title:       "End Dimension",
		description: "Pale yellows, purples, and ethereal tones",
		rows: []blockRow{
			{"minecraft:end_stone", Primary},
			{"minecraft:purpur_block", Secondary},
			{"minecraft:end_stone_bricks", Secondary},
			{"minecraft:obsidian", Secondary},
			{"minecraft:chorus_flower", Secondary},
			{"minecraft:chorus_plant", Accent},
		},
	},
}

var naturalAliases = map[string]string{
	"woods": "forest",
	"sand":  "desert",
	"water": "ocean",
	"stone": "mountain",
}

var architecturalSets = map[string]blockSet{
	"medieval": {
		title:       "Medieval Architecture",
		description: "Traditional building materials for castles and medieval structures",
		rows: []blockRow{
			{"minecraft:cobblestone", Primary},
			{"minecraft:oak_planks", Secondary},
			{"minecraft:stone_bricks", Secondary},
			{"minecraft:dark_oak_planks", Secondary},
			{"minecraft:mossy_cobblestone", Secondary},
			{"minecraft:oak_log", Accent},
		},
	},
	"modern": {
		title:       "Modern Architecture",
		description: "Clean lines and contemporary materials for modern builds",
		rows: []blockRow{
			{"minecraft:white_concrete", Primary},
			{"minecraft:light_gray_concrete", Secondary},
			{"minecraft:glass", Secondary},
			{"minecraft:iron_block", Secondary},
			{"minecraft:quartz_block", Secondary},
			{"minecraft:black_concrete", Accent},
		},
	},
	"rustic": {
		title:       "Rustic Style",
		description: "Natural materials for farmhouses and country builds",
		rows: []blockRow{
			{"minecraft:stripped_oak_log", Primary},
			{"minecraft:cobblestone", Secondary},
			{"minecraft:coarse_dirt", Secondary},
			{"minecraft:hay_block", Secondary},
			{"minecraft:oak_fence", Secondary},
			{"minecraft:stone", Accent},
		},
	},
	"industrial": {
		title:       "Industrial Style",
		description: "Metallic and mechanical blocks for factories and tech builds",
		rows: []blockRow{
			{"minecraft:iron_block", Primary},
			{"minecraft:gray_concrete", Secondary},
			{"minecraft:observer", Secondary},
			{"minecraft:anvil", Secondary},
			{"minecraft:cauldron", Secondary},
			{"minecraft:redstone_block", Accent},
		},
	},
}

// ThemedNames lists the themed gradient names.
func ThemedNames() []string {
	return sortedKeys(themedGradients)
}

// NaturalThemes lists the biome names accepted by Generator.Natural,
// without aliases.
func NaturalThemes() []string {
	return []string{"forest", "desert", "ocean", "mountain", "nether", "end"}
}

// ArchitecturalStyles lists the style names accepted by
// Generator.Architectural.
func ArchitecturalStyles() []string {
	return []string{"medieval", "modern", "rustic", "industrial"}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
