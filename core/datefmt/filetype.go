package datefmt

import "strings"

// UnknownFileType is returned for MIME types with neither a known keyword nor a subtype.
const UnknownFileType = "File"

// GetFileType labels an attachment from its MIME type. First match wins:
// video > pdf > word documents > upper-cased subtype > "File".
func GetFileType(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "video"):
		return "Video"
	case strings.Contains(mimeType, "pdf"):
		return "PDF"
	case strings.Contains(mimeType, "word"): // msword & openxml wordprocessingml
		return "DOC"
	}
	parts := strings.Split(mimeType, "/")
	if len(parts) > 1 && parts[1] != "" {
		return strings.ToUpper(parts[1])
	}
	return UnknownFileType
}

func (f *Formatter) GetFileType(mimeType string) string {
	return GetFileType(mimeType)
}
