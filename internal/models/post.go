package models

// Post представляет публикацию в ленте сообщества
type Post struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Content    string `json:"content"`
	Image      string `json:"image,omitempty"`
	Likes      int    `json:"likes"`
	Comments   int    `json:"comments"`
	Timestamp  string `json:"timestamp"`
}
