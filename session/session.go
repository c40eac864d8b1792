// Package session is the game-session facade: it outlives level reloads and
// owns the sound mixer and the elapsed-time readout.
package session

import (
	"fmt"
	"time"
)

// SoundDef registers one clip with the session.
type SoundDef struct {
	Name   string
	Clip   string
	Kind   SoundKind
	Volume float64
}

// Session is constructed once per run and handed to whoever needs it.
type Session struct {
	Sounds *SoundManager

	elapsed time.Duration
	stopped bool
}

// New registers sounds and starts music, if any. A nil factory gives a silent
// session.
func New(factory TrackFactory, sounds []SoundDef, music string) (*Session, error) {
	mgr := NewSoundManager(factory)
	for _, def := range sounds {
		if err := mgr.AddSound(def.Name, def.Clip, def.Kind, def.Volume); err != nil {
			return nil, err
		}
	}
	s := &Session{Sounds: mgr}
	if music != "" {
		if _, ok := mgr.sounds[music]; !ok {
			return nil, fmt.Errorf("session: music %q is not registered", music)
		}
		mgr.PlayMusic(music)
	}
	return s, nil
}

func (s *Session) PlaySound(name string) {
	if s == nil || s.Sounds == nil {
		return
	}
	s.Sounds.PlaySound(name)
}

func (s *Session) PlayLoopedSound(name string) {
	if s == nil || s.Sounds == nil {
		return
	}
	s.Sounds.PlayLoopedSound(name)
}

func (s *Session) StopLoopedSound() {
	if s == nil || s.Sounds == nil {
		return
	}
	s.Sounds.StopLoopedSound()
}

func (s *Session) PlayMusic(name string) {
	if s == nil || s.Sounds == nil {
		return
	}
	s.Sounds.PlayMusic(name)
}

// Tick advances the elapsed-time readout by one simulation step.
func (s *Session) Tick(dt time.Duration) {
	if s == nil || s.stopped || dt <= 0 {
		return
	}
	s.elapsed += dt
}

func (s *Session) Elapsed() time.Duration {
	if s == nil {
		return 0
	}
	return s.elapsed
}

// StopTimer freezes the readout; ResumeTimer continues from the frozen value.
func (s *Session) StopTimer() {
	if s != nil {
		s.stopped = true
	}
}

func (s *Session) ResumeTimer() {
	if s != nil {
		s.stopped = false
	}
}

// TimerText renders the readout, e.g. "Time: 12.345s".
func (s *Session) TimerText() string {
	return fmt.Sprintf("Time: %.3fs", s.Elapsed().Seconds())
}
