package publish

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// LoadJob reads and parses a job description file.
func LoadJob(path string) (*VideoJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var job VideoJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	return &job, nil
}

// SimulatedID synthesizes a platform-assigned-looking identifier from job
// attributes plus a fresh nonce, so repeated publishes never collide. It
// stands in for the ID a real publishing API would return and carries no
// meaning beyond that.
func SimulatedID(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	h.Write([]byte(uuid.NewString()))
	h.Write([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Timestamp formats the publish time the way results carry it.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
