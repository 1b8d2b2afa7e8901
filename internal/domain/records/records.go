package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrDuplicateID: otro registro del mismo tipo ya usa el id.
	// Pasa si un usuario cierra dos registros en el mismo segundo.
	ErrDuplicateID = errors.New("duplicate record id")
	ErrNotFound    = errors.New("not found")
)

// ID arma el id {user_id}_{unix}. No agrega sufijo ante colisiones.
func ID(userID string, t time.Time) string {
	return fmt.Sprintf("%s_%d", strings.TrimSpace(userID), t.Unix())
}

// ParseID separa un id en usuario y timestamp.
func ParseID(id string) (userID string, at time.Time, ok bool) {
	i := strings.LastIndex(id, "_")
	if i <= 0 || i == len(id)-1 {
		return "", time.Time{}, false
	}
	sec, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, false
	}
	return id[:i], time.Unix(sec, 0).UTC(), true
}
