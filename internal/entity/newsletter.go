package entity

// ContentSection is one titled block of generated newsletter copy. Content
// may contain backend-produced HTML and is passed through unchanged.
type ContentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// GeneratedNewsletter is a drafted newsletter produced from an outline.
// EditorNotes holds the persisted guidance consumed by regeneration;
// EditorNoteBlock is the verbatim note text the LLM echoed for display.
// The two are independent fields and must never be conflated.
type GeneratedNewsletter struct {
	ID                 int64          `json:"id"`
	OutlineID          int64          `json:"outline_id"`
	MetaSuggestionID   int64          `json:"meta_suggestion_id"`
	Section1           ContentSection `json:"section1"`
	Section2           ContentSection `json:"section2"`
	Section3           ContentSection `json:"section3"`
	Section4           ContentSection `json:"section4"`
	KeyTakeaway        string         `json:"key_takeaway"`
	SourceURLs         []string       `json:"source_urls"`
	EditorNotes        *string        `json:"editor_notes,omitempty"`
	EditorNoteBlock    *string        `json:"editor_note_block,omitempty"`
	LLMGenerationError *string        `json:"llm_generation_error,omitempty"`
	CreatedAt          string         `json:"created_at"`
}
