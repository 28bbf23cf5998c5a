package navigation

const (
	DefaultHideThreshold     = 150
	DefaultScrolledThreshold = 20
)

// BarState is the header bar presentation derived from scrolling.
type BarState struct {
	Hidden   bool `json:"hidden"`
	Scrolled bool `json:"scrolled"`
}

// Bar hides the header while scrolling down past a threshold and shows it
// again on any upward scroll or near the top.
type Bar struct {
	hideThreshold     float64
	scrolledThreshold float64
	state             BarState
}

func NewBar(hideThreshold, scrolledThreshold float64) *Bar {
	return &Bar{hideThreshold: hideThreshold, scrolledThreshold: scrolledThreshold}
}

func (b *Bar) State() BarState { return b.state }

// Thresholds returns the hide and scrolled thresholds.
func (b *Bar) Thresholds() (hide, scrolled float64) {
	return b.hideThreshold, b.scrolledThreshold
}

// OnScrollDelta updates the bar from the previous and current scroll offsets.
func (b *Bar) OnScrollDelta(previousY, currentY float64) BarState {
	b.state = BarState{
		Hidden:   currentY > previousY && currentY > b.hideThreshold,
		Scrolled: currentY > b.scrolledThreshold,
	}
	return b.state
}
