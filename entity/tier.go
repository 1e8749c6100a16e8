package entity

// Tier is a brick's position along its destruction path
type Tier uint8

const (
	TierNormal Tier = iota
	TierThick
	TierThicker
	TierSolid

	tierCount
)

var tierNames = [tierCount]string{
	TierNormal:  "Normal",
	TierThick:   "Thick",
	TierThicker: "Thicker",
	TierSolid:   "Solid",
}

// String returns the tier name
func (t Tier) String() string {
	if t < tierCount {
		return tierNames[t]
	}
	return "Unknown"
}

// Tiers lists every tier in declaration order
func Tiers() []Tier {
	return []Tier{TierNormal, TierThick, TierThicker, TierSolid}
}

// lighter is the tier a brick degrades into before breaking, a tier mapping to itself breaks directly
var lighter = [tierCount]Tier{
	TierNormal:  TierNormal,
	TierThick:   TierThick,
	TierThicker: TierThick,
	TierSolid:   TierSolid,
}

// HitPoints holds the hits each tier absorbs, 0 marks an indestructible tier
type HitPoints [tierCount]int

// Of returns the hit points of t
func (h HitPoints) Of(t Tier) int {
	if t >= tierCount {
		return 0
	}
	return h[t]
}

// Damage applies one hit to a brick of tier with hp remaining
// Returns the new tier and hit points, and whether the brick is destroyed
// Tiers with no hit points are unaffected
func (h HitPoints) Damage(tier Tier, hp int) (Tier, int, bool) {
	if tier >= tierCount || h[tier] <= 0 {
		return tier, hp, false
	}

	hp--
	if hp <= 0 {
		return tier, 0, true
	}

	if next := lighter[tier]; next != tier && hp <= h[next] {
		tier = next
	}
	return tier, hp, false
}
