package physics

import "github.com/jakecoffman/cp"

// collisionEntity tags every entity-owned shape, boundary segments keep the default type
const collisionEntity cp.CollisionType = 1

// Contact exposes a presolve arbiter to listeners
// Bounciness and friction come from the shapes, a listener can only inspect or drop the contact
type Contact struct {
	arb     *cp.Arbiter
	flipped bool
	ignored *bool
}

// Swapped returns the same contact seen from the other body
func (c *Contact) Swapped() *Contact {
	return &Contact{arb: c.arb, flipped: !c.flipped, ignored: c.ignored}
}

// Normal returns the collision normal pointing from this side toward the other body
func (c *Contact) Normal() (x, y float64) {
	n := c.arb.Normal()
	if c.flipped {
		return -n.X, -n.Y
	}
	return n.X, n.Y
}

// Ignore drops the contact from resolution for this step
// An ignored contact is never reported as a contact event
func (c *Contact) Ignore() {
	*c.ignored = true
}

// Ignored reports whether any listener dropped the contact
func (c *Contact) Ignored() bool {
	return *c.ignored
}
