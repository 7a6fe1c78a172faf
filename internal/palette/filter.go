package palette

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/blockhue/internal/catalog"
)

// Filter restricts which blocks a generator may use. The zero value allows
// every block. Checks work on block IDs, so they apply to any catalog.
type Filter struct {
	// ExcludeFalling drops gravity-affected blocks such as sand and gravel.
	ExcludeFalling bool
	// ExcludeTileEntities drops containers and other block entities.
	ExcludeTileEntities bool
	// FullBlocksOnly drops slabs, stairs, fences and other partial shapes.
	FullBlocksOnly bool
	// ExcludeNeedsSupport drops plants, torches and other attached blocks.
	ExcludeNeedsSupport bool
	// ExcludeTransparent drops glass, fluids and ice.
	ExcludeTransparent bool
	// ExcludeLightSources drops blocks that emit light.
	ExcludeLightSources bool
	// SurvivalOnly drops creative-only blocks.
	SurvivalOnly bool
	// Exclude drops IDs containing any of these substrings.
	Exclude []string
	// Include, when non-empty, keeps only IDs containing one of these
	// substrings. It is checked before every other rule.
	Include []string
}

var partialShapes = []string{
	"_slab", "_stairs", "_fence", "_gate", "_wall", "_button",
	"_pressure_plate", "_door", "_trapdoor",
}

// SolidBlocksOnly allows full, opaque, survival-obtainable building blocks.
func SolidBlocksOnly() Filter {
	return Filter{
		ExcludeFalling:      true,
		ExcludeTileEntities: true,
		FullBlocksOnly:      true,
		ExcludeNeedsSupport: true,
		ExcludeTransparent:  true,
		SurvivalOnly:        true,
		Exclude:             partialShapes,
	}
}

// DecorativeBlocks allows partial and transparent blocks but still avoids
// falling blocks and block entities.
func DecorativeBlocks() Filter {
	return Filter{
		ExcludeFalling:      true,
		ExcludeTileEntities: true,
		SurvivalOnly:        true,
	}
}

// StructuralBlocksOnly is SolidBlocksOnly without light sources, glass or
// fluids.
func StructuralBlocksOnly() Filter {
	f := SolidBlocksOnly()
	f.ExcludeLightSources = true
	f.Exclude = append(append([]string{}, partialShapes...), "glass", "water", "lava")
	return f
}

// FilterNames lists the presets accepted by ParseFilter.
func FilterNames() []string {
	return []string{"none", "solid", "decorative", "structural"}
}

// ParseFilter returns a preset by name.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "all":
		return Filter{}, nil
	case "solid":
		return SolidBlocksOnly(), nil
	case "decorative":
		return DecorativeBlocks(), nil
	case "structural":
		return StructuralBlocksOnly(), nil
	default:
		return Filter{}, fmt.Errorf("unknown filter: %s (valid: %s)", name, strings.Join(FilterNames(), ", "))
	}
}

// AllowsElement reports whether the filter accepts a catalog element.
func (f Filter) AllowsElement(e catalog.Element) bool {
	return f.Allows(e.ID)
}

// Allows reports whether the filter accepts a block ID.
func (f Filter) Allows(id string) bool {
	id = strings.ToLower(id)

	if len(f.Include) > 0 && !containsAny(id, f.Include...) {
		return false
	}
	if containsAny(id, f.Exclude...) {
		return false
	}

	switch {
	case f.ExcludeFalling && isFalling(id):
		return false
	case f.ExcludeTileEntities && isTileEntity(id):
		return false
	case f.FullBlocksOnly && !isFullBlock(id):
		return false
	case f.ExcludeNeedsSupport && needsSupport(id):
		return false
	case f.ExcludeTransparent && isTransparent(id):
		return false
	case f.ExcludeLightSources && isLightSource(id):
		return false
	case f.SurvivalOnly && isCreativeOnly(id):
		return false
	}
	return true
}

func containsAny(id string, parts ...string) bool {
	for _, p := range parts {
		if p != "" && strings.Contains(id, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func isFalling(id string) bool {
	if strings.HasSuffix(id, "sand") && !strings.HasSuffix(id, "soul_sand") {
		return true
	}
	return containsAny(id, "gravel", "anvil", "concrete_powder", "pointed_dripstone")
}

func isTileEntity(id string) bool {
	return containsAny(id,
		"chest", "furnace", "dispenser", "dropper", "hopper", "beacon",
		"brewing_stand", "enchanting_table", "shulker_box", "barrel",
		"smoker", "campfire", "lectern", "jukebox")
}

func isFullBlock(id string) bool {
	return !containsAny(id,
		"slab", "stairs", "fence", "gate", "wall", "door", "button",
		"pressure_plate", "carpet", "torch", "lantern", "chain", "rod", "bars")
}

func needsSupport(id string) bool {
	switch {
	case strings.Contains(id, "grass") && !strings.Contains(id, "grass_block"):
		return true
	case strings.Contains(id, "mushroom") && !strings.Contains(id, "mushroom_block"):
		return true
	case strings.Contains(id, "coral") && !strings.Contains(id, "coral_block"):
		return true
	}
	return containsAny(id,
		"torch", "flower", "fern", "sapling", "wheat", "carrot", "potato",
		"beetroot", "sugar_cane", "cactus", "bamboo", "vine", "lily_pad",
		"kelp", "button", "lever", "sign", "banner", "painting")
}

func isTransparent(id string) bool {
	// Suffix match keeps stairs out.
	if strings.HasSuffix(id, "air") {
		return true
	}
	return containsAny(id,
		"glass", "water", "lava", "ice", "slime_block", "honey_block",
		"barrier", "structure_void")
}

func isLightSource(id string) bool {
	return containsAny(id,
		"torch", "lantern", "glowstone", "beacon", "campfire", "fire", "lava",
		"magma_block", "redstone_lamp", "shroomlight", "crying_obsidian",
		"respawn_anchor", "candle", "glow_lichen", "amethyst_cluster")
}

func isCreativeOnly(id string) bool {
	return containsAny(id,
		"barrier", "structure_void", "structure_block", "command_block",
		"jigsaw", "debug_stick", "knowledge_book", "spawn_egg")
}
