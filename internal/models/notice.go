package models

type NoticeType int

const (
	Info NoticeType = iota
	Success
	Warning
)

// Notice is a transient status line message produced by post-result actions
type Notice struct {
	Content string
	Type    NoticeType
}
