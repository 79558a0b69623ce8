package generation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/datawhale/worksim/internal/domain"
)

// Extensions and their MIME types for generated files. Keys are iterated
// in sorted order when sampling so draws stay deterministic.
var attachmentMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".pdf":  "application/pdf",
	".csv":  "text/csv",
	".xlsx": "application/vnd.ms-excel",
	".zip":  "application/zip",
	".pptx": "application/vnd.ms-powerpoint",
}

var attachmentExtensions = sortedKeys(attachmentMIMETypes)

var fileNameSuffixes = []string{"v1", "v2", "v3", "final", "draft", "review"}

var fileNameSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fileNameFor derives a filesystem-friendly name from a task name plus a
// random suffix and extension.
func fileNameFor(s *Source, taskName string) string {
	base := strings.Trim(fileNameSanitizer.ReplaceAllString(strings.ToLower(taskName), "_"), "_")
	return base + "_" + pick(s, fileNameSuffixes) + pick(s, attachmentExtensions)
}

// GenerateAttachments materializes 1-3 attachments for roughly half of
// the tasks. File names are unique within a task, sizes usually fall in
// 500-2500 KB with a 15% chance of the wider 50-5000 KB range, and upload
// dates sit inside the task's created/due window.
func GenerateAttachments(g *Context, tasks []*domain.Task) ([]*domain.Attachment, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	g.reseedPhase()

	var attachments []*domain.Attachment
	for _, task := range tasks {
		if !g.Rand.Bernoulli(0.5) {
			continue
		}
		if task.DueDate == nil {
			continue
		}

		numAttachments := g.Rand.Between(1, 3)
		usedNames := make(map[string]struct{}, numAttachments)

		for i := 0; i < numAttachments; i++ {
			fileName := fileNameFor(g.Rand, task.Name)
			for {
				if _, dup := usedNames[fileName]; !dup {
					break
				}
				fileName = fileNameFor(g.Rand, task.Name)
			}
			usedNames[fileName] = struct{}{}

			ext := fileName[strings.LastIndex(fileName, "."):]
			mimeType, ok := attachmentMIMETypes[ext]
			if !ok {
				mimeType = "application/octet-stream"
			}

			sizeKB := g.Rand.Between(500, 2500)
			if g.Rand.Bernoulli(0.15) {
				sizeKB = g.Rand.Between(50, 5000)
			}

			attachments = append(attachments, &domain.Attachment{
				ID:         NewID(g.Rand, "att"),
				TaskID:     task.ID,
				FileName:   fileName,
				FileType:   mimeType,
				FileSizeKB: sizeKB,
				UploadedAt: g.Rand.DateBetween(task.CreatedAt, *task.DueDate),
				URL:        "https://files.worksim.dev/" + fileName,
			})
		}
	}
	return attachments, nil
}
