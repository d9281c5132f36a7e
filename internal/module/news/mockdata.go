package news

import (
	"time"

	"github.com/omnidash/omnidash/internal/domain"
)

// mockArticles is the demo dataset served whenever the proxy path fails.
// It is built once at init; timestamps are staggered hourly back from
// process start. Treat as immutable.
var mockArticles = buildMockArticles(time.Now())

func buildMockArticles(now time.Time) []domain.NewsArticle {
	str := func(s string) *string { return &s }

	articles := []domain.NewsArticle{
		{
			Source:      domain.NewsSource{ID: str("bbc-news"), Name: "BBC News"},
			Author:      str("BBC News"),
			Title:       "Breaking: Major Technology Advances in AI Development",
			Description: str("Scientists announce breakthrough in artificial intelligence that could revolutionize multiple industries."),
			URL:         "https://example.com/news/1",
			URLToImage:  str("https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800"),
			Content:     str("Full article content here..."),
		},
		{
			Source:      domain.NewsSource{ID: str("cnn"), Name: "CNN"},
			Author:      str("John Smith"),
			Title:       "Global Markets Rally on Economic Optimism",
			Description: str("Stock markets around the world see significant gains as investors respond to positive economic indicators."),
			URL:         "https://example.com/news/2",
			URLToImage:  str("https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?w=800"),
			Content:     str("Full article content here..."),
		},
		{
			Source:      domain.NewsSource{ID: str("techcrunch"), Name: "TechCrunch"},
			Author:      str("Jane Doe"),
			Title:       "New Startup Raises $100M for Green Energy Innovation",
			Description: str("Clean energy startup secures major funding round to expand sustainable technology solutions."),
			URL:         "https://example.com/news/3",
			URLToImage:  str("https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=800"),
			Content:     str("Full article content here..."),
		},
		{
			Source:      domain.NewsSource{ID: str("reuters"), Name: "Reuters"},
			Author:      str("Reuters Staff"),
			Title:       "Space Agency Announces New Mars Mission Timeline",
			Description: str("International space agency reveals updated schedule for upcoming Mars exploration missions."),
			URL:         "https://example.com/news/4",
			URLToImage:  str("https://images.unsplash.com/photo-1614728263952-84ea256f9679?w=800"),
			Content:     str("Full article content here..."),
		},
		{
			Source:      domain.NewsSource{ID: str("the-verge"), Name: "The Verge"},
			Author:      str("Tech Reporter"),
			Title:       "Next-Gen Smartphones Set to Transform Mobile Experience",
			Description: str("Industry experts preview upcoming smartphone technologies that will change how we interact with devices."),
			URL:         "https://example.com/news/5",
			URLToImage:  str("https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=800"),
			Content:     str("Full article content here..."),
		},
		{
			Source:      domain.NewsSource{ID: str("wired"), Name: "Wired"},
			Author:      str("Science Writer"),
			Title:       "Climate Scientists Develop New Carbon Capture Method",
			Description: str("Revolutionary technique could significantly reduce atmospheric carbon dioxide levels."),
			URL:         "https://example.com/news/6",
			URLToImage:  str("https://images.unsplash.com/photo-1569163139599-0f4517e36f31?w=800"),
			Content:     str("Full article content here..."),
		},
	}

	for i := range articles {
		articles[i].PublishedAt = now.Add(-time.Duration(i) * time.Hour).UTC().Format(time.RFC3339)
	}
	return articles
}

func mockResponse(articles []domain.NewsArticle) *domain.NewsResponse {
	return &domain.NewsResponse{
		Status:       "ok",
		TotalResults: len(articles),
		Articles:     articles,
	}
}
