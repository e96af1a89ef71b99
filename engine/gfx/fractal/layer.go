package fractal

import "github.com/hubastard/juliaset/engine/core"

var _ core.Layer = (*Session)(nil)

// OnAttach starts the frame loop. Click zoom direction follows the modifier
// state tracked by the engine.
func (s *Session) OnAttach(e *core.Engine) error {
	s.ctrl.Mods = e.Input.Mods
	s.Start()
	return nil
}

// OnDetach frees the GPU objects.
func (s *Session) OnDetach(*core.Engine) { s.Release() }

func (s *Session) OnEvent(_ *core.Engine, ev core.Event) bool { return s.HandleEvent(ev) }
