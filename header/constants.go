package header

const (
	ContentType = "Content-Type"
)

const (
	MediaTypeJSON = "application/json"
)
