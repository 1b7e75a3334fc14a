package tutor

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// AgentID identifies the component that produces or handles a turn.
type AgentID string

const (
	AgentLecture    AgentID = "lecture"
	AgentQA         AgentID = "qa"
	AgentAssessment AgentID = "assessment"
	AgentRemedial   AgentID = "remedial"
	AgentWelcome    AgentID = "welcome"
)

// Message is a single entry in the conversation transcript.
// Messages are immutable once appended; the slice order is the
// conversation's total order and is never reordered or deduplicated.
type Message struct {
	Role Role `json:"role"`

	// AgentType tags which component produced an assistant message.
	// Empty for user messages.
	AgentType AgentID `json:"agent_type,omitempty"`

	Content string `json:"content"`

	// Step is the outline index a lecture message explains.
	// -1 when the message is not tied to a topic.
	Step int `json:"step,omitempty"`
}

// UserMessage builds a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content, Step: -1}
}

// AssistantMessage builds an assistant message tagged with its producing agent.
func AssistantMessage(agent AgentID, content string) Message {
	return Message{Role: RoleAssistant, AgentType: agent, Content: content, Step: -1}
}

// LastUserMessage returns the most recent user message content, scanning
// backward. The second return is false when no user message exists.
func LastUserMessage(messages []Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == RoleUser {
			return messages[i].Content, true
		}
	}
	return "", false
}

// PendingQuestion returns the most recent user message that is non-empty
// and not a continue-style command. This is the question the lecture
// controller weaves into its next explanation.
func PendingQuestion(messages []Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		if m.Role != RoleUser {
			continue
		}
		if isBlank(m.Content) {
			continue
		}
		if IsContinue(m.Content) {
			continue
		}
		return m.Content, true
	}
	return "", false
}
