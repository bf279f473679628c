package web

import (
	"errors"

	"github.com/goserg/vegasgolf/internal/web/webpath"
)

// page is the data every template gets. Page specific values go to Data.
type page struct {
	Title string
	Path  map[string]string
	Data  map[string]any
}

func newPage(title string) page {
	return page{
		Title: title,
		Path:  webpath.Path(),
		Data:  make(map[string]any),
	}
}

func (p page) With(key string, value any) page {
	p.Data[key] = value
	return p
}

// messages flattens joined errors into one message per cause.
func messages(err error) []string {
	var msgs []string
	queue := []error{err}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		var joined interface{ Unwrap() []error }
		if errors.As(e, &joined) {
			queue = append(append([]error(nil), joined.Unwrap()...), queue...)
			continue
		}
		msgs = append(msgs, e.Error())
	}
	return msgs
}
