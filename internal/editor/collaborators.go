package editor

import "blogcreator/internal/post"

// Dialogs asks the user for file locations. A false result means the user
// cancelled.
type Dialogs interface {
	OpenPath() (string, bool)
	SavePath(suggested string) (string, bool)
}

// Store reads and writes persisted posts
type Store interface {
	Read(path string) (post.Post, error)
	Write(path string, p post.Post) error
}

// Fetcher retrieves the raw bytes behind an image URL
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// Opener hands a URL to the system's default handler
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error { return f(url) }
