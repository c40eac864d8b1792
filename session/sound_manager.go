package session

import (
	"fmt"
	"log"
	"sort"
)

// SoundKind picks the channel a sound plays on.
type SoundKind int

const (
	SoundSFX SoundKind = iota
	SoundMusic
)

func (k SoundKind) String() string {
	if k == SoundMusic {
		return "music"
	}
	return "sfx"
}

// ParseSoundKind accepts "sfx" and "music".
func ParseSoundKind(s string) (SoundKind, error) {
	switch s {
	case "", "sfx":
		return SoundSFX, nil
	case "music":
		return SoundMusic, nil
	default:
		return SoundSFX, fmt.Errorf("session: unknown sound kind %q", s)
	}
}

// Track is one playable clip. *audio.Player from Ebiten satisfies it.
type Track interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// TrackFactory decodes a clip into a track, optionally looping forever.
type TrackFactory interface {
	NewTrack(clip string, loop bool) (Track, error)
}

type sound struct {
	name   string
	clip   string
	kind   SoundKind
	volume float64

	once Track
	loop Track
}

// SoundManager is a small named-sound mixer: one-shot effects, a single looped
// effect channel, and a single music channel.
type SoundManager struct {
	factory TrackFactory
	sounds  map[string]*sound

	loopName  string
	loopTrack Track

	musicName  string
	musicTrack Track

	SFXVolume   float64
	MusicVolume float64
	muted       bool

	warned map[string]bool
}

func NewSoundManager(factory TrackFactory) *SoundManager {
	return &SoundManager{
		factory:     factory,
		sounds:      make(map[string]*sound),
		SFXVolume:   1,
		MusicVolume: 1,
		warned:      make(map[string]bool),
	}
}

// AddSound registers a clip under name. Tracks are decoded on first use.
func (m *SoundManager) AddSound(name, clip string, kind SoundKind, volume float64) error {
	if name == "" {
		return fmt.Errorf("session: sound name is empty")
	}
	if _, exists := m.sounds[name]; exists {
		return fmt.Errorf("session: sound %q already registered", name)
	}
	if volume <= 0 {
		volume = 1
	}
	m.sounds[name] = &sound{name: name, clip: clip, kind: kind, volume: volume}
	return nil
}

// Names returns the registered sound names, sorted.
func (m *SoundManager) Names() []string {
	names := make([]string, 0, len(m.sounds))
	for name := range m.sounds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlaySound plays a sound once from the start.
func (m *SoundManager) PlaySound(name string) {
	s := m.lookup(name)
	if s == nil {
		return
	}
	t := m.track(s, false)
	if t == nil {
		return
	}
	m.start(t, s, m.SFXVolume)
}

// PlayLoopedSound replaces whatever is on the loop channel with name.
func (m *SoundManager) PlayLoopedSound(name string) {
	s := m.lookup(name)
	if s == nil {
		return
	}
	m.StopLoopedSound()
	t := m.track(s, true)
	if t == nil {
		return
	}
	m.loopName = name
	m.loopTrack = t
	m.start(t, s, m.SFXVolume)
}

// StopLoopedSound silences the loop channel.
func (m *SoundManager) StopLoopedSound() {
	if m.loopTrack != nil {
		m.loopTrack.Pause()
	}
	m.loopTrack = nil
	m.loopName = ""
}

// LoopedSound returns the name on the loop channel, or "".
func (m *SoundManager) LoopedSound() string {
	return m.loopName
}

// PlayMusic switches the music channel to name. Asking for the track that is
// already playing does nothing.
func (m *SoundManager) PlayMusic(name string) {
	if name == m.musicName && m.musicTrack != nil && m.musicTrack.IsPlaying() {
		return
	}
	s := m.lookup(name)
	if s == nil {
		return
	}
	m.StopMusic()
	t := m.track(s, true)
	if t == nil {
		return
	}
	m.musicName = name
	m.musicTrack = t
	m.start(t, s, m.MusicVolume)
}

func (m *SoundManager) StopMusic() {
	if m.musicTrack != nil {
		m.musicTrack.Pause()
	}
	m.musicTrack = nil
	m.musicName = ""
}

// Music returns the current music name, or "".
func (m *SoundManager) Music() string {
	return m.musicName
}

// SetMuted silences every channel without forgetting what is playing.
func (m *SoundManager) SetMuted(muted bool) {
	m.muted = muted
	if m.loopTrack != nil {
		m.loopTrack.SetVolume(m.volumeFor(m.sounds[m.loopName], m.SFXVolume))
	}
	if m.musicTrack != nil {
		m.musicTrack.SetVolume(m.volumeFor(m.sounds[m.musicName], m.MusicVolume))
	}
}

func (m *SoundManager) Muted() bool {
	return m.muted
}

func (m *SoundManager) start(t Track, s *sound, channel float64) {
	t.SetVolume(m.volumeFor(s, channel))
	if err := t.Rewind(); err != nil {
		m.warnOnce("rewind:"+s.name, "session: rewind %q: %v", s.name, err)
	}
	t.Play()
}

func (m *SoundManager) volumeFor(s *sound, channel float64) float64 {
	if m.muted || s == nil {
		return 0
	}
	v := s.volume * channel
	if v > 1 {
		v = 1
	}
	return v
}

func (m *SoundManager) lookup(name string) *sound {
	s, ok := m.sounds[name]
	if !ok {
		m.warnOnce("missing:"+name, "session: unknown sound %q", name)
		return nil
	}
	return s
}

func (m *SoundManager) track(s *sound, loop bool) Track {
	cached := &s.once
	if loop {
		cached = &s.loop
	}
	if *cached != nil {
		return *cached
	}
	if m.factory == nil {
		return nil
	}
	t, err := m.factory.NewTrack(s.clip, loop)
	if err != nil {
		m.warnOnce("decode:"+s.name, "session: load %q (%s): %v", s.name, s.clip, err)
		return nil
	}
	*cached = t
	return t
}

func (m *SoundManager) warnOnce(key, format string, args ...any) {
	if m.warned[key] {
		return
	}
	m.warned[key] = true
	log.Printf(format, args...)
}
