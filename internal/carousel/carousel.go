// Package carousel tracks the selected slide of a wrapping carousel and the
// direction of the last move.
package carousel

// Direction of the last transition: -1 backwards, 1 forwards, 0 none yet.
type Direction int

const (
	Backward Direction = -1
	None     Direction = 0
	Forward  Direction = 1
)

// Carousel is a value type; moves return the new state.
type Carousel struct {
	length    int
	index     int
	direction Direction
}

// New returns a carousel over length slides positioned at start, wrapped
// into range. A non-positive length yields an empty carousel.
func New(length, start int) Carousel {
	if length <= 0 {
		return Carousel{}
	}
	return Carousel{length: length, index: wrap(start, length)}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (c Carousel) Len() int             { return c.length }
func (c Carousel) Index() int           { return c.index }
func (c Carousel) Direction() Direction { return c.direction }
func (c Carousel) Empty() bool          { return c.length == 0 }

// Paginate moves by step slides, wrapping at both ends.
func (c Carousel) Paginate(step int) Carousel {
	if c.length == 0 || step == 0 {
		return c
	}
	c.index = wrap(c.index+step, c.length)
	if step > 0 {
		c.direction = Forward
	} else {
		c.direction = Backward
	}
	return c
}

func (c Carousel) Next() Carousel { return c.Paginate(1) }
func (c Carousel) Prev() Carousel { return c.Paginate(-1) }

// GoTo jumps to i. Direction follows the comparison with the current index;
// out-of-range targets are ignored.
func (c Carousel) GoTo(i int) Carousel {
	if i < 0 || i >= c.length || i == c.index {
		return c
	}
	if i > c.index {
		c.direction = Forward
	} else {
		c.direction = Backward
	}
	c.index = i
	return c
}

// NextIndex and PrevIndex are the targets of the arrow controls.
func (c Carousel) NextIndex() int { return c.Next().index }
func (c Carousel) PrevIndex() int { return c.Prev().index }
