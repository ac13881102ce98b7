package postgres

import (
	"database/sql"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

func isNotFound(err error) bool {
	return crerr.Is(err, sql.ErrNoRows)
}

// encodeJSONB renders value as a JSON document for a jsonb column. Strings are
// sent instead of bytes so lib/pq passes them as text.
func encodeJSONB(value any) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigStd.NewEncoder(buf).Encode(value); err != nil {
		return "", crerr.Wrap(err, "encode jsonb")
	}
	return strings.TrimSpace(buf.String()), nil
}

func decodeJSONB(raw []byte, out any) error {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		return crerr.Wrap(err, "decode jsonb")
	}
	return nil
}

func nullInt64ToIntPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	out := int(value.Int64)
	return &out
}
