package config

import "fmt"

// VariantInfo describes a named arena variant.
type VariantInfo struct {
	ID          string
	Title       string
	Description string
}

var variants = []VariantInfo{
	{ID: "classic", Title: "Spacewar", Description: "Solid walls, a star that teleports ships, both ships armed"},
	{ID: "gravity", Title: "Spacewar: Gravity Well", Description: "Wrap-around space pulled toward a central star"},
	{ID: "wrap", Title: "Spacewar: Wrap", Description: "Wrap-around space, teleporting star, no gravity"},
	{ID: "lethal", Title: "Spacewar: Lethal Star", Description: "Gravity well whose star destroys ships on contact"},
	{ID: "gunner", Title: "Spacewar: Gunner", Description: "Solid walls, only the player can fire"},
}

// Variants returns all known arena variants in display order.
func Variants() []VariantInfo {
	out := make([]VariantInfo, len(variants))
	copy(out, variants)
	return out
}

// LookupVariant returns the variant with the given ID.
func LookupVariant(id string) (VariantInfo, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantInfo{}, false
}

// ApplyVariant switches the variant-specific flags of cfg to the named preset.
func ApplyVariant(cfg *SpacewarConfig, id string) error {
	if _, ok := LookupVariant(id); !ok {
		return fmt.Errorf("config: unknown variant %q", id)
	}
	cfg.Variant = id

	switch id {
	case "classic":
		cfg.Arena.Boundary = BoundaryEdge
		cfg.Gravity.Enabled = false
		cfg.Hazard.Contact = HazardContactAuto
		cfg.Projectiles.PlayerFires = true
		cfg.Projectiles.EnemyFires = true
	case "gravity":
		cfg.Arena.Boundary = BoundaryWrap
		cfg.Gravity.Enabled = true
		cfg.Hazard.Contact = HazardContactAuto
		cfg.Projectiles.PlayerFires = true
		cfg.Projectiles.EnemyFires = true
	case "wrap":
		cfg.Arena.Boundary = BoundaryWrap
		cfg.Gravity.Enabled = false
		cfg.Hazard.Contact = HazardContactRelocate
		cfg.Projectiles.PlayerFires = true
		cfg.Projectiles.EnemyFires = true
	case "lethal":
		cfg.Arena.Boundary = BoundaryWrap
		cfg.Gravity.Enabled = true
		cfg.Hazard.Contact = HazardContactLethal
		cfg.Projectiles.PlayerFires = true
		cfg.Projectiles.EnemyFires = true
	case "gunner":
		cfg.Arena.Boundary = BoundaryEdge
		cfg.Gravity.Enabled = false
		cfg.Hazard.Contact = HazardContactAuto
		cfg.Projectiles.PlayerFires = true
		cfg.Projectiles.EnemyFires = false
	}
	return nil
}
