package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded token from a submission date and
// creation time, used for keyset pagination over submission listings.
func EncodeToken(submissionDate string, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", submissionDate, createdAt.Format(timeFormat))
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into the submission date
// and creation time.
func DecodeToken(token string) (string, time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	tokenStr := string(decodedBytes)
	parts := strings.SplitN(tokenStr, "|", 2)
	if len(parts) != 2 {
		return "", time.Time{}, fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return "", time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return parts[0], createdAt, nil
}
