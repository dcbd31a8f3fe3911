package phone

import (
	"phonefmt/platform/events"

	"github.com/google/uuid"
)

// TemplatesReplaced is published after an administrator swapped the template table.
type TemplatesReplaced struct {
	events.BaseEvent
	ReplacedBy uuid.UUID `json:"replaced_by"`
	Countries  int       `json:"countries"`
	Templates  int       `json:"templates"`
}

func (TemplatesReplaced) EventName() string {
	return "phone.templates_replaced"
}
