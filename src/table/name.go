package table

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrBadTableName = errors.New("bad table name")

const tableSuffix = "rt"

// FormatName encodes the table parameters into a file name:
// <hash>.<chainNum>.<chainLen>.<index>.rt. The hash name may contain
// anything except '.'; nothing is escaped.
func FormatName(hashName string, chainNum, chainLen, index uint32) string {
	return fmt.Sprintf("%s.%d.%d.%d.%s", hashName, chainNum, chainLen, index, tableSuffix)
}

// ParseName extracts the parameters encoded by FormatName from a table
// path. The hash name is everything before the first '.'; the index is
// validated but not returned, lookups have no use for it.
func ParseName(path string) (hashName string, chainNum, chainLen uint32, err error) {
	base := filepath.Base(path)

	name, rest, ok := strings.Cut(base, ".")
	if !ok || name == "" {
		return "", 0, 0, fmt.Errorf("%q: %w", base, ErrBadTableName)
	}

	parts := strings.Split(rest, ".")
	if len(parts) != 4 || parts[3] != tableSuffix {
		return "", 0, 0, fmt.Errorf("%q: %w", base, ErrBadTableName)
	}

	var nums [3]uint32
	for i := range nums {
		v, perr := strconv.ParseUint(parts[i], 10, 32)
		if perr != nil {
			return "", 0, 0, fmt.Errorf("%q: %w", base, ErrBadTableName)
		}

		nums[i] = uint32(v)
	}

	return name, nums[0], nums[1], nil
}
