// Package terminal plays the game in a terminal through tcell.
package terminal

import (
	"time"

	"snake-powerups/game/session"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Run takes over the terminal until the session is done.
func Run(sess *session.Session) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := s.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer s.Fini()
	s.HideCursor()

	return loop(s, sess)
}

func loop(s tcell.Screen, sess *session.Session) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	fps := sess.FrameRate()
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()

	r := newRenderer(s)
	r.draw(sess.View())

	for !sess.Done() {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				for _, in := range keyIntents(sess.Screen(), e) {
					sess.Handle(in)
				}
			}
		case <-tick.C:
			sess.Step()
			r.draw(sess.View())
			if rate := sess.FrameRate(); rate != fps {
				fps = rate
				tick.Reset(time.Second / time.Duration(fps))
			}
		}
	}
	return nil
}
