package assistant

import "strings"

// Flow identifies which conversation flow handles an incoming message.
type Flow int

const (
	// FlowNewVideo fetches, chunks and summarizes a linked video.
	FlowNewVideo Flow = iota
	// FlowActionPoints extracts actionable insights from the stored session.
	FlowActionPoints
	// FlowFollowUp answers a question from retrieved session chunks.
	FlowFollowUp
	// FlowDefault asks the user to send a link first.
	FlowDefault
)

// String returns the flow name for logging.
func (f Flow) String() string {
	switch f {
	case FlowNewVideo:
		return "new_video"
	case FlowActionPoints:
		return "action_points"
	case FlowFollowUp:
		return "follow_up"
	default:
		return "default"
	}
}

// Route decides the flow for an incoming message. Priority order: a YouTube
// link always starts a new video; "action points" and follow-up questions
// require an existing session; otherwise the default prompt. No flow clears a
// session, so the only reachable transition out of the HasSession state is
// wholesale replacement by a new video.
func Route(text string, hasSession bool) Flow {
	switch {
	case strings.Contains(text, "youtube.com") || strings.Contains(text, "youtu.be"):
		return FlowNewVideo
	case strings.Contains(strings.ToLower(text), "action points") && hasSession:
		return FlowActionPoints
	case hasSession:
		return FlowFollowUp
	default:
		return FlowDefault
	}
}
