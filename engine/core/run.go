package core

import (
	"log/slog"
	"runtime"
	"time"
)

// Run creates the window and drives the loop: poll events, run requested
// frames, present when one of them drew. When nothing is requested it sleeps
// in WaitEvents. OnShutdown runs even when OnStart fails, so the app can free
// whatever it built before the failure.
func Run(app App, cfg Config, newWindow func(Config) (Window, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	eng := &Engine{
		Window: win,
		Frames: NewFrameQueue(win.Wake),
		Input:  NewInput(),
		start:  time.Now(),
	}
	win.SetEventCallback(func(ev Event) { dispatch(app, eng, ev) })

	if err := app.OnStart(eng); err != nil {
		detachAll(eng)
		app.OnShutdown(eng)
		return err
	}

	frames := 0
	for !win.ShouldClose() {
		win.PollEvents()
		if eng.Frames.RunPending() > 0 {
			win.SwapBuffers()
			frames++
			continue
		}
		if eng.Frames.Pending() > 0 {
			continue
		}
		if !win.ShouldClose() {
			win.WaitEvents()
		}
	}

	detachAll(eng)
	app.OnShutdown(eng)
	slog.Info("engine exit", "frames", frames, "uptime", eng.Uptime().Round(time.Millisecond))
	return nil
}

func dispatch(app App, eng *Engine, ev Event) {
	eng.Input.Handle(ev)
	if _, ok := ev.(EventCloseRequested); ok {
		eng.Window.RequestClose()
	}
	handled := eng.Layers.ForEachReverse(func(l Layer) bool { return l.OnEvent(eng, ev) })
	if !handled {
		app.OnEvent(eng, ev)
	}
}

func detachAll(eng *Engine) {
	for {
		l, ok := eng.Layers.Pop()
		if !ok {
			return
		}
		l.OnDetach(eng)
	}
}
