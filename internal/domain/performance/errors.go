package performance

import "errors"

var ErrTargetsNotConfigured = errors.New("no targets configured for employment type")
