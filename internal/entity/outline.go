package entity

// OutlineDataPoint is a single metric or figure inside an outline section.
type OutlineDataPoint struct {
	Description string  `json:"description"`
	Value       string  `json:"value"`
	SourceURL   *string `json:"source_url,omitempty"`
}

// OutlineSection is one named narrative block within an article outline.
type OutlineSection struct {
	Heading                  *string            `json:"heading,omitempty"`
	ContentPoints            []string           `json:"content_points,omitempty"`
	DataPoints               []OutlineDataPoint `json:"data_points,omitempty"`
	SupportingDataReferences []string           `json:"supporting_data_references,omitempty"`
}

// ArticleOutline is the structured narrative skeleton stored in the outline's
// outline_data column.
type ArticleOutline struct {
	MainTitle                     string           `json:"main_title"`
	InitialSnippet                string           `json:"initial_snippet"`
	ContextOfSituation            OutlineSection   `json:"context_of_situation"`
	WhyItMattersBankingInitial    OutlineSection   `json:"why_it_matters_banking_initial"`
	BodySecondOrderEffects        []OutlineSection `json:"body_second_order_effects"`
	WhyItMattersBankingConcluding OutlineSection   `json:"why_it_matters_banking_concluding"`
	PodcastConnection             OutlineSection   `json:"podcast_connection"`
	BackbaseMention               *OutlineSection  `json:"backbase_mention,omitempty"`
	KeyTakeaways                  OutlineSection   `json:"key_takeaways"`
	SourceURLs                    []string         `json:"source_urls"`
	Error                         *string          `json:"error,omitempty"`
}

// Outline is the full outline record as returned by GET /outlines/{id}.
// Regeneration replaces the record wholesale; there is no versioning.
type Outline struct {
	ID               int64          `json:"id"`
	MetaSuggestionID *int64         `json:"meta_suggestion_id,omitempty"`
	MainTitle        string         `json:"main_title"`
	InitialSnippet   string         `json:"initial_snippet"`
	OutlineData      ArticleOutline `json:"outline_data"`
	ErrorMessage     *string        `json:"error_message,omitempty"`
	CreatedAt        string         `json:"created_at"`
}
