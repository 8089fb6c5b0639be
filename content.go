package chatify

// ContentType represents the type of content.
type ContentType int

const (
	// ContentTypeText represents a normalized prose segment.
	ContentTypeText ContentType = iota
	// ContentTypeThink represents a reasoning aside, collapsed by the renderer.
	ContentTypeThink
	// ContentTypeToolCall represents a parsed tool invocation.
	ContentTypeToolCall
	// ContentTypeFile represents an extracted code block attachment.
	ContentTypeFile
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeText:
		return "text"
	case ContentTypeThink:
		return "think"
	case ContentTypeToolCall:
		return "tool_call"
	case ContentTypeFile:
		return "file"
	default:
		return "unknown"
	}
}

// ContentTrace tracks the source and metadata of content.
type ContentTrace struct {
	SourceType string
	Extra      map[string]interface{}
}

// Content represents a piece of renderer-ready content.
type Content interface {
	GetContentType() ContentType
	GetContentTrace() ContentTrace
}

// Text represents a normalized prose segment ready for math/markdown rendering.
type Text struct {
	Text         string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeText.
func (t *Text) GetContentType() ContentType {
	return ContentTypeText
}

// GetContentTrace returns the content trace.
func (t *Text) GetContentTrace() ContentTrace {
	return t.ContentTrace
}

// Think represents a reasoning aside.
type Think struct {
	Text         string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeThink.
func (t *Think) GetContentType() ContentType {
	return ContentTypeThink
}

// GetContentTrace returns the content trace.
func (t *Think) GetContentTrace() ContentTrace {
	return t.ContentTrace
}

// ToolCall represents a tool invocation span with its parsed record and,
// when available, the backend execution result matched to it.
type ToolCall struct {
	// ID correlates the rendered collapsible view with the backend result.
	ID string
	// Record is nil when the payload could not be parsed; the renderer
	// falls back to displaying Raw.
	Record       *ParsedToolCall
	Result       *ToolResult
	Raw          string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeToolCall.
func (t *ToolCall) GetContentType() ContentType {
	return ContentTypeToolCall
}

// GetContentTrace returns the content trace.
func (t *ToolCall) GetContentTrace() ContentTrace {
	return t.ContentTrace
}

// File represents a large code block extracted as an attachment.
type File struct {
	FileName     string
	FileData     []byte
	Language     string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeFile.
func (f *File) GetContentType() ContentType {
	return ContentTypeFile
}

// GetContentTrace returns the content trace.
func (f *File) GetContentTrace() ContentTrace {
	return f.ContentTrace
}
