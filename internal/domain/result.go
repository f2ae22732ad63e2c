package domain

// FileInfo echoes the accepted attachment back to the caller.
type FileInfo struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// SubmissionResult is the normalized outcome of one submission.
type SubmissionResult struct {
	Success       bool      `json:"success"`
	TicketID      string    `json:"ticket_id,omitempty"`
	CorrelationID string    `json:"correlation_id"`
	Message       string    `json:"message"`
	HasFile       bool      `json:"has_file"`
	FileInfo      *FileInfo `json:"file_info,omitempty"`
}
