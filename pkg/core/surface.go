package core

import "fmt"

// FormatCommand names a formatting action understood by a RichTextSurface.
type FormatCommand string

const (
	CommandBold                FormatCommand = "bold"
	CommandItalic              FormatCommand = "italic"
	CommandUnderline           FormatCommand = "underline"
	CommandInsertUnorderedList FormatCommand = "insertUnorderedList"
	CommandInsertOrderedList   FormatCommand = "insertOrderedList"
)

// FormatCommands lists every command a surface must accept.
var FormatCommands = []FormatCommand{
	CommandBold,
	CommandItalic,
	CommandUnderline,
	CommandInsertUnorderedList,
	CommandInsertOrderedList,
}

// ParseFormatCommand maps a command name to a FormatCommand.
func ParseFormatCommand(name string) (FormatCommand, error) {
	for _, c := range FormatCommands {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// RichTextSurface is the editable text component that produces note content.
// The core never looks inside the content it returns; it only snapshots it
// at commit time.
type RichTextSurface interface {
	// Apply executes a formatting command at the current editing position.
	Apply(cmd FormatCommand) error

	// CurrentContent returns the serialized content as it is right now.
	CurrentContent() string

	// Reset replaces the whole surface content, discarding any pending formatting state.
	Reset(content string)
}
