package view

import (
	"fmt"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	flashSessionName = "flash-session"
	flashKeyInfo     = "info"
)

// FlashData holds the one-shot notices pending for the current visitor.
type FlashData struct {
	Info []string
}

// Empty reports whether there is nothing to show.
func (f FlashData) Empty() bool {
	return len(f.Info) == 0
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key, message string) error {
	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return fmt.Errorf("load flash session: %w", err)
	}
	sess.AddFlash(message, key)
	return sess.Save(c.Request(), c.Response())
}

// SetFlashInfo sets an informational flash message.
func SetFlashInfo(c echo.Context, message string) error {
	return setFlash(c, flashKeyInfo, message)
}

// GetFlashData retrieves and clears the flash messages from the session.
// A missing or unreadable session yields empty data.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, err := session.Get(flashSessionName, c)
	if err != nil {
		return data
	}

	// Flashes() clears what it returns, so the session has to be saved
	// afterwards for the clear to stick.
	data.Info = toStrings(sess.Flashes(flashKeyInfo))

	if !data.Empty() {
		_ = sess.Save(c.Request(), c.Response())
	}
	return data
}

func toStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
