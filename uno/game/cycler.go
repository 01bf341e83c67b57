package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indices in the current direction of play.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   size - 1,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Size() int {
	return c.size
}

func (c *Cycler) ForEach(function func(int)) {
	for index := 0; index < c.size; index++ {
		function(index)
	}
}

func (c *Cycler) Next() int {
	c.current = c.Peek(true)
	return c.current
}

// Peek returns the neighbour of the current index without moving. forward follows the
// direction of play, otherwise the previous player is returned.
func (c *Cycler) Peek(forward bool) int {
	step := c.direction
	if !forward {
		step = -step
	}
	return (c.current + step + c.size) % c.size
}

func (c *Cycler) Set(index int) {
	c.current = ((index % c.size) + c.size) % c.size
}

func (c *Cycler) Forward() bool {
	return c.direction == right
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
