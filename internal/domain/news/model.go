package news

import "time"

type Category string

const (
	CategoryTransfer Category = "transfer"
	CategoryMatch    Category = "match"
	CategoryAward    Category = "award"
	CategoryLeague   Category = "league"
	CategoryGeneral  Category = "general"
)

// Article is a published news item.
type Article struct {
	ID               string
	Title            string
	Excerpt          string
	Content          string
	Author           string
	AuthorAvatarURL  string
	Category         Category
	FeaturedImageURL string
	PublishedAt      time.Time
	UpdatedAt        time.Time
	Views            int
	Likes            int
	Comments         int
	IsFeatured       bool
	Tags             []string
}

// Engagement is the trending score: likes plus comments.
func (a Article) Engagement() int {
	return a.Likes + a.Comments
}
