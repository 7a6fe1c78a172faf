package palette

import "strings"

// Material is a coarse block material category derived from the block ID.
type Material string

// Material categories.
const (
	MaterialStone    Material = "stone"
	MaterialWood     Material = "wood"
	MaterialConcrete Material = "concrete"
	MaterialFabric   Material = "fabric"
	MaterialGlass    Material = "glass"
	MaterialMetal    Material = "metal"
	MaterialOther    Material = "other"
)

// Categorise guesses the material of a block from its ID.
func Categorise(id string) Material {
	id = strings.ToLower(id)
	switch {
	case containsAny(id, "stone", "cobblestone", "brick"):
		return MaterialStone
	case containsAny(id, "wood", "plank", "log"):
		return MaterialWood
	case containsAny(id, "concrete", "terracotta"):
		return MaterialConcrete
	case containsAny(id, "wool", "carpet"):
		return MaterialFabric
	case containsAny(id, "glass"):
		return MaterialGlass
	case containsAny(id, "metal", "iron", "gold", "copper"):
		return MaterialMetal
	default:
		return MaterialOther
	}
}

// UsageNotes suggests how to use a block in the given role.
func UsageNotes(id string, role Role) string {
	material := Categorise(id)

	switch role {
	case Primary:
		switch material {
		case MaterialStone:
			return "Excellent for foundations, walls, and main structures"
		case MaterialWood:
			return "Great for frames, floors, and warm architectural elements"
		case MaterialConcrete:
			return "Perfect for modern builds and large surfaces"
		}
	case Secondary:
		switch material {
		case MaterialStone:
			return "Use for detailing, trim, and structural accents"
		case MaterialWood:
			return "Ideal for stairs, slabs, and secondary features"
		default:
			return "Good for supporting elements and medium-scale features"
		}
	case Accent:
		return "Use sparingly for highlights, borders, and eye-catching details"
	}

	return "Versatile block suitable for various building applications"
}

func colourUsage(role Role) string {
	switch role {
	case Primary:
		return "Main colour for large surfaces"
	case Secondary:
		return "Supporting colour for trim and medium-scale features"
	default:
		return "Use sparingly for highlights and details"
	}
}
