package room

import (
	"encoding/json"
	"strings"

	"github.com/tacktile/interview-agent/internal/transcript"
)

// Roles carried on conversation items by the room transport.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Fragment is one piece of a conversation item's content, normalized at the
// transport boundary. The wire shape is heterogeneous: a plain string, a
// structured object with a "text" field, or a map carrying a "text" key.
// Fragments without extractable text decode to an empty Text.
type Fragment struct {
	Text string
}

func (f *Fragment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Text = s
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		f.Text = obj.Text
		return nil
	}
	// Unrecognized fragment shape (number, bool, nested array): no text.
	f.Text = ""
	return nil
}

// Content is a conversation item's content, which may arrive as a single
// plain string or as a sequence of mixed fragments.
type Content []Fragment

func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Content{{Text: s}}
		return nil
	}
	var frags []Fragment
	if err := json.Unmarshal(data, &frags); err != nil {
		return err
	}
	*c = Content(frags)
	return nil
}

// ConversationItem is one normalized conversation event.
type ConversationItem struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// Text concatenates all extractable fragments in order.
func (it ConversationItem) Text() string {
	var b strings.Builder
	for _, f := range it.Content {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Speaker maps the item's role to a transcript speaker tag.
// Returns false for roles that carry no speaker (system, tool output).
func (it ConversationItem) Speaker() (transcript.Speaker, bool) {
	switch it.Role {
	case RoleUser:
		return transcript.SpeakerCandidate, true
	case RoleAssistant:
		return transcript.SpeakerInterviewer, true
	}
	return "", false
}

// ParticipantKind distinguishes standard human participants from automated
// ones (telephony bridges, agents, media ingress).
type ParticipantKind string

const (
	ParticipantKindStandard ParticipantKind = "standard"
	ParticipantKindSIP      ParticipantKind = "sip"
	ParticipantKindAgent    ParticipantKind = "agent"
	ParticipantKindIngress  ParticipantKind = "ingress"
)

// Participant identifies a room participant.
type Participant struct {
	Identity string          `json:"identity"`
	Kind     ParticipantKind `json:"kind"`
}

// IsHuman reports whether this participant's disconnect should count as a
// session-termination signal.
func (p Participant) IsHuman() bool {
	return p.Kind == "" || p.Kind == ParticipantKindStandard
}

// Subscriber receives normalized room events, one method per event kind.
// Implementations must not block the delivering goroutine for long; the
// client serializes calls, so no two methods run concurrently for one room.
type Subscriber interface {
	OnConversationItem(item ConversationItem)
	OnParticipantDisconnected(p Participant)
	OnDisconnected()
}
