// internal/domain/photo.go
package domain

import "time"

// Accepted photo content types.
var validMimeTypes = map[string]bool{
	"image/bmp":  true,
	"image/jpeg": true,
	"image/png":  true,
}

// ValidImageType reports whether ct is one of the accepted photo content types.
func ValidImageType(ct string) bool {
	return validMimeTypes[ct]
}

// Image is a pipeline-scoped upload. Data starts as the raw bytes and is
// replaced in place by the filtered bytes as the pipeline advances.
type Image struct {
	Name     string
	MimeType string
	Data     []byte
}

// ObjectEntry is one row of a store listing.
type ObjectEntry struct {
	Key          string
	LastModified time.Time
}

// ListPage is one page of a store listing. Ordering is the store's own
// (lexicographic by key) and is preserved end to end.
type ListPage struct {
	Items       []ObjectEntry
	IsTruncated bool
	// NextCursor resumes strictly after the last key of a truncated page.
	NextCursor string
}

// UploadResult describes a stored object.
type UploadResult struct {
	Bucket   string `json:"bucket"`
	Key      string `json:"key"`
	Location string `json:"location"`
}

// URLPage is the user-consumable form of a listing: signed URLs in store order.
type URLPage struct {
	Photos []string `json:"photos"`
	Cursor string   `json:"cursor,omitempty"`
	Limit  int      `json:"limit,omitempty"`
}
