package legal

import "errors"

var ErrPageNotFound = errors.New("legal page not found")
