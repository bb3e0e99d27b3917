package refmap

import "errors"

var ErrKeyNotFound = errors.New("refmap: key not found")
