package domain

import "time"

// OutcomeEvent — запись о проверке, публикуемая после серверной проверки файла.
type OutcomeEvent struct {
	RequestID string      `json:"request_id,omitempty"`
	FileName  string      `json:"file_name"`
	Digest    string      `json:"digest,omitempty"`
	Outcome   OutcomeKind `json:"outcome"`
	Reason    string      `json:"reason,omitempty"`
	Cached    bool        `json:"cached"`
	CheckedAt time.Time   `json:"checked_at"`
}
