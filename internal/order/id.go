package order

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewID generates an order identifier of the form
// ORD-<base36 timestamp>-<6 uppercase alphanumerics>. The timestamp part
// keeps identifiers roughly ordered; the random suffix makes collisions
// between near-simultaneous orders practically impossible without any
// central coordination.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("ORD-%s-%s", ts, suffix)
}
