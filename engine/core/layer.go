package core

// Layer is a unit of rendering and input handling stacked on the Engine.
type Layer interface {
	OnAttach(e *Engine) error
	OnDetach(e *Engine)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Len() int     { return len(ls.list) }

func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

// ForEachReverse visits top to bottom until f returns true.
func (ls *LayerStack) ForEachReverse(f func(Layer) bool) bool {
	for i := len(ls.list) - 1; i >= 0; i-- {
		if stop := f(ls.list[i]); stop {
			return true
		}
	}
	return false
}
