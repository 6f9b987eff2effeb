package components

const (
	// CoinBonus is granted to whatever collides with a coin
	CoinBonus = 1000

	// PassUnderOffset is how far the spiked wall shoves a body it catches from behind
	PassUnderOffset = 18.0

	// defaultScored is the exit value of an entity without a more specific kind
	defaultScored = 100
)

// behavior is the per-kind override table entry
type behavior struct {
	damage    func(self *Entity) int
	scored    int
	bounceOff func(self, other *Entity)
}

// behaviors is indexed by Kind
var behaviors = [...]behavior{
	KindPlayer:     {damage: damageStandard, scored: 200, bounceOff: swapVelocity},
	KindBall:       {damage: damageStandard, scored: 200, bounceOff: swapVelocity},
	KindCoin:       {damage: damageCoin, scored: 0, bounceOff: bounceCoin},
	KindLifesaver:  {damage: damageLifesaver, scored: 200, bounceOff: swapVelocity},
	KindObstacle:   {damage: damageStandard, scored: defaultScored, bounceOff: swapVelocity},
	KindSpikedWall: {damage: damageSpikedWall, scored: 0, bounceOff: bounceSpikedWall},
}

func (e *Entity) behavior() behavior {
	if int(e.kind) < len(behaviors) {
		return behaviors[e.kind]
	}
	return behavior{damage: damageStandard, scored: defaultScored, bounceOff: swapVelocity}
}

// Damage applies collision damage to this entity and returns the hit-point
// delta it deals to the other party (negative hurts, positive heals)
func (e *Entity) Damage() int {
	return e.behavior().damage(e)
}

// Scored returns the points granted to the player when this entity leaves the bottom
func (e *Entity) Scored() int {
	return e.behavior().scored
}

// BounceOff applies this entity's collision response to other
func (e *Entity) BounceOff(other *Entity) {
	e.behavior().bounceOff(e, other)
}

func damageStandard(self *Entity) int {
	self.AddHP(-1)
	return -1
}

func damageCoin(self *Entity) int {
	self.AddHP(-1)
	return 0
}

func damageLifesaver(self *Entity) int {
	self.AddHP(-1)
	return 1
}

// Spiked wall cannot die from collisions, hits make it tougher
func damageSpikedWall(self *Entity) int {
	self.hp++
	return -1
}

func swapVelocity(self, other *Entity) {
	self.VX, other.VX = other.VX, self.VX
	self.VY, other.VY = other.VY, self.VY
}

// Coins are consumed, not bounced off
func bounceCoin(_, other *Entity) {
	other.AddScore(CoinBonus)
}

// A body the wall catches from behind while slower is pushed ahead at double
// the wall's speed, anything else is reflected on both axes
func bounceSpikedWall(self, other *Entity) {
	if other.VY <= self.VY && other.Y-other.height > self.Y {
		other.Y += PassUnderOffset
		other.VY = self.VY * 2
		return
	}
	other.VX = -other.VX
	other.VY = -other.VY
}
