package entity

// MetaSuggestion represents a candidate newsletter topic proposed by the
// content backend's generation pipeline. Date fields stay strings: the
// backend emits naive ISO timestamps and this service never does arithmetic
// on them.
type MetaSuggestion struct {
	ID                    int64   `json:"id"`
	Title                 string  `json:"title"`
	Snippet               *string `json:"snippet,omitempty"`
	SourceArticleIDs      []int64 `json:"source_article_ids,omitempty"`
	SupportingResearchIDs []int64 `json:"supporting_research_ids,omitempty"`
	SupportingPodcastIDs  []int64 `json:"supporting_podcast_ids,omitempty"`
	IsChosen              bool    `json:"is_chosen"`
	CreatedAt             string  `json:"created_at"`
	ChosenAt              *string `json:"chosen_at,omitempty"`
}
