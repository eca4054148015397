package usecase

import (
	"strconv"
	"strings"
)

// AttributionFooter is appended to every pull request message
const AttributionFooter = "[`caskbump`](https://github.com/m-mizutani/caskbump)"

// ComposeMessage returns the pull request message with the attribution footer
func ComposeMessage(message string) string {
	if strings.TrimSpace(message) == "" {
		return AttributionFooter
	}
	return message + "\n\n" + AttributionFooter
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
