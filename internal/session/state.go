// Package session tracks, per interactive browse session, whether the
// next generation request starts a fresh provider thread or continues
// the previous one.
package session

import "mediastudio-backend/internal/model"

// Family groups operations whose continuation tokens are interchangeable.
// Image and video threads are tracked independently; any other operation
// belongs to FamilyNone and carries no continuation at all.
type Family int

const (
	FamilyNone Family = iota
	FamilyImage
	FamilyVideo
)

// Kind tags the stored state. Modeled as an explicit tagged value rather
// than nullable fields so the invalidation rules stay exhaustive.
type Kind int

const (
	KindNone Kind = iota
	KindImage
	KindVideo
)

// State is the continuation state of one browse session: nothing, an
// image-edit thread, or the most recently produced video (with the
// resolution tier it was rendered at).
type State struct {
	Kind  Kind
	Token string
	Tier  string
}

// Mode is the tracker's verdict for a request.
type Mode int

const (
	ModeNew Mode = iota
	ModeContinue
)

// Decision pairs the verdict with the token to attach when continuing.
type Decision struct {
	Mode  Mode
	Token string
}

func (f Family) kind() Kind {
	switch f {
	case FamilyImage:
		return KindImage
	case FamilyVideo:
		return KindVideo
	default:
		return KindNone
	}
}

// Decide applies the continuation rule: CONTINUE only when the caller did
// not ask for a new generation, a token is stored, and the token belongs
// to the same family. In every other case the verdict is NEW, and a
// family mismatch additionally discards the stored token so that it can
// never resurface after the user switched operation types.
func (s State) Decide(fam Family, explicitNew bool) (State, Decision) {
	if s.Kind != KindNone && s.Kind != fam.kind() {
		s = State{}
	}
	if explicitNew || fam == FamilyNone || s.Kind == KindNone {
		return s, Decision{Mode: ModeNew}
	}
	return s, Decision{Mode: ModeContinue, Token: s.Token}
}

// Observe records the token a successful generation returned. It always
// overwrites, whatever the previous state; failed or timed-out calls must
// simply not call it.
func (s State) Observe(fam Family, token, tier string) State {
	switch fam {
	case FamilyImage:
		return State{Kind: KindImage, Token: token}
	case FamilyVideo:
		return State{Kind: KindVideo, Token: token, Tier: tier}
	default:
		return State{}
	}
}

// Extendable reports whether the stored state references a video that may
// serve as the basis for an extension request. Only the lower resolution
// tier is eligible; the higher tier is terminal.
func (s State) Extendable(videoID string) bool {
	if s.Kind != KindVideo {
		return false
	}
	if videoID != "" && videoID != s.Token {
		return false
	}
	return s.Tier == model.Resolution720p
}
