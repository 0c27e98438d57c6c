package tkv

import (
	"bytes"
	"fmt"

	"github.com/tarantool/go-kvrange/driver"
	"github.com/tarantool/go-kvrange/rangequery"
)

// ErrUnsupportedRange is returned for queries config storage cannot serve:
// intervals other than a single key or a "/"-terminated prefix, and
// historical revisions.
var ErrUnsupportedRange = fmt.Errorf("%w: range is not supported by tarantool config storage", driver.ErrPermanent)

// rangePath returns the config storage path whose contents cover the query interval.
func rangePath(query rangequery.Query) ([]byte, error) {
	err := query.Validate()
	if err != nil {
		return nil, err
	}

	keyRange := query.KeyRange()

	switch {
	case query.Revision() != 0:
		return nil, fmt.Errorf("%w: revision %d is not the latest", ErrUnsupportedRange, query.Revision())
	case keyRange.IsSingle():
		return keyRange.Key, nil
	case keyRange.IsPrefix() && bytes.HasSuffix(keyRange.Key, []byte("/")):
		return keyRange.Key, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedRange, keyRange)
	}
}
