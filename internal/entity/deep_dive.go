package entity

// DeepDive is supplementary backend-generated commentary tied to one source
// (article, research report or podcast episode) for a topic.
type DeepDive struct {
	ID               int64   `json:"id"`
	MetaSuggestionID int64   `json:"meta_suggestion_id"`
	Title            string  `json:"deep_dive_title"`
	Content          string  `json:"deep_dive_content"`
	SourceURL        *string `json:"source_url,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// DeepDiveSet groups the up-to-three deep dives available for one topic.
type DeepDiveSet struct {
	MetaSuggestionID int64     `json:"meta_suggestion_id"`
	ArticleDeepDive  *DeepDive `json:"article_deep_dive"`
	ResearchDeepDive *DeepDive `json:"research_deep_dive"`
	PodcastDeepDive  *DeepDive `json:"podcast_deep_dive"`
}

// HasAny reports whether at least one deep dive is present.
func (s *DeepDiveSet) HasAny() bool {
	if s == nil {
		return false
	}
	return s.ArticleDeepDive != nil || s.ResearchDeepDive != nil || s.PodcastDeepDive != nil
}
