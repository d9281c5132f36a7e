package domain

// NewsArticle mirrors one article in the news provider's wire shape.
// Nullable provider fields stay pointers so null round-trips untouched.
type NewsArticle struct {
	Source      NewsSource `json:"source"`
	Author      *string    `json:"author"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	URL         string     `json:"url"`
	URLToImage  *string    `json:"urlToImage"`
	PublishedAt string     `json:"publishedAt"`
	Content     *string    `json:"content"`
}

type NewsSource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

// NewsResponse is the news provider's listing envelope.
type NewsResponse struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []NewsArticle `json:"articles"`
}
