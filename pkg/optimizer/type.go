package optimizer

// Type tags the detected image format of a file. It is produced by a
// TypeGuesser and used only as a dispatch key, never stored.
type Type string

const (
	PNG  Type = "png"
	JPEG Type = "jpeg"
	GIF  Type = "gif"
	SVG  Type = "svg"
)

// TypeGuesser classifies a file on disk by its content. It fails when
// the file cannot be read or matches no known format.
type TypeGuesser interface {
	Guess(path string) (Type, error)
}
