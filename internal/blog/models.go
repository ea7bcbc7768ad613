package blog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalizedText maps the fixed set of supported language codes to plain
// strings. English is mandatory; every other language is optional.
type LocalizedText struct {
	En string `json:"en" bson:"en"`
	Be string `json:"be,omitempty" bson:"be,omitempty"`
	Br string `json:"br,omitempty" bson:"br,omitempty"`
	De string `json:"de,omitempty" bson:"de,omitempty"`
	Es string `json:"es,omitempty" bson:"es,omitempty"`
	Fr string `json:"fr,omitempty" bson:"fr,omitempty"`
	Hi string `json:"hi,omitempty" bson:"hi,omitempty"`
	It string `json:"it,omitempty" bson:"it,omitempty"`
	Ja string `json:"ja,omitempty" bson:"ja,omitempty"`
	Kr string `json:"kr,omitempty" bson:"kr,omitempty"`
	Ru string `json:"ru,omitempty" bson:"ru,omitempty"`
	Zh string `json:"zh,omitempty" bson:"zh,omitempty"`
}

// LocalizedContent is the structured-document counterpart of LocalizedText:
// each value is arbitrary editor output rather than a plain string.
type LocalizedContent struct {
	En interface{} `json:"en" bson:"en"`
	Be interface{} `json:"be,omitempty" bson:"be,omitempty"`
	Br interface{} `json:"br,omitempty" bson:"br,omitempty"`
	De interface{} `json:"de,omitempty" bson:"de,omitempty"`
	Es interface{} `json:"es,omitempty" bson:"es,omitempty"`
	Fr interface{} `json:"fr,omitempty" bson:"fr,omitempty"`
	Hi interface{} `json:"hi,omitempty" bson:"hi,omitempty"`
	It interface{} `json:"it,omitempty" bson:"it,omitempty"`
	Ja interface{} `json:"ja,omitempty" bson:"ja,omitempty"`
	Kr interface{} `json:"kr,omitempty" bson:"kr,omitempty"`
	Ru interface{} `json:"ru,omitempty" bson:"ru,omitempty"`
	Zh interface{} `json:"zh,omitempty" bson:"zh,omitempty"`
}

// Post is a persisted blog entry. Blogpath is derived from Title.En on every
// write and is unique across the collection (enforced by an index).
type Post struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       LocalizedText      `json:"title" bson:"title"`
	Blogpath    string             `json:"blogpath" bson:"blogpath"`
	Author      string             `json:"author" bson:"author"`
	Description LocalizedText      `json:"description" bson:"description"`
	Blogimage   []string           `json:"blogimage" bson:"blogimage"`
	Products    string             `json:"products,omitempty" bson:"products,omitempty"`
	Category    LocalizedText      `json:"category" bson:"category"`
	Content     LocalizedContent   `json:"content" bson:"content"`
	PublishedAt time.Time          `json:"publishedAt" bson:"publishedAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
