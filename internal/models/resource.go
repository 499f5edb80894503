package models

type Resource struct {
	ID          int    `json:"id" bson:"id"`
	Title       string `json:"title" bson:"title"`
	Category    string `json:"category" bson:"category"`
	Description string `json:"description" bson:"description"`
}

type BlogPost struct {
	ID       int       `json:"id" bson:"id"`
	Title    string    `json:"title" bson:"title"`
	Content  string    `json:"content" bson:"content"`
	Comments []Comment `json:"comments" bson:"comments"`
}

type Comment struct {
	Author  string `json:"author" bson:"author"`
	Content string `json:"content" bson:"content"`
}
