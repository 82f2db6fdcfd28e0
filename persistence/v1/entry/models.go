package entry

import "fmt"

const postsKey = "posts.%s"

// Entry is one journal post as it is stored: part of a single JSON array
// blob per user.
type Entry struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	CreatedAt int64  `json:"createdAt"`
}

// Key returns the blob key holding user's entry collection.
func Key(user string) string {
	return fmt.Sprintf(postsKey, user)
}
