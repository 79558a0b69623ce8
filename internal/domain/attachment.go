package domain

import "time"

// Attachment is a file uploaded to a task. FileName is unique within
// the owning task.
type Attachment struct {
	ID         string
	TaskID     string
	FileName   string
	FileType   string
	FileSizeKB int
	UploadedAt time.Time
	URL        string
}
