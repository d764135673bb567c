package audit

import (
	"encoding/hex"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"orgconnect/models"
)

var (
	syntheticActions = []string{"file_accessed", "project_viewed", "comment_added", "task_completed", "user_login"}
	syntheticUsers   = []string{"John Smith", "Sarah Johnson", "Mike Chen", "Lisa Brown"}
	syntheticOrgs    = []string{"TechCorp Solutions", "Innovate Ltd"}
)

// Synthetic builds the background entry the live log appends every tick.
func Synthetic(rng *rand.Rand, now time.Time) models.AuditEntry {
	action := syntheticActions[rng.IntN(len(syntheticActions))]
	user := syntheticUsers[rng.IntN(len(syntheticUsers))]
	org := syntheticOrgs[rng.IntN(len(syntheticOrgs))]

	domain := "innovate.com"
	if org == "TechCorp Solutions" {
		domain = "techcorp.com"
	}
	millis := fmt.Sprintf("%d", now.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	return models.AuditEntry{
		ID:                fmt.Sprintf("AUDIT-%d-%s", now.Year(), millis),
		Timestamp:         now.UTC(),
		Action:            action,
		ActionDescription: strings.Replace(action, "_", " ", 1) + " performed",
		User:              user,
		UserEmail:         strings.ToLower(strings.Replace(user, " ", ".", 1)) + "@" + domain,
		Organization:      org,
		Resource:          "E-commerce Platform",
		ResourceType:      "project",
		Details:           []models.Detail{{Key: "automated", Value: "true"}},
		IPAddress:         fmt.Sprintf("192.168.1.%d", rng.IntN(255)),
		UserAgent:         "Mozilla/5.0 (automated)",
		Severity:          models.SeverityLow,
		Hash:              RandomHash(rng),
	}
}

// RandomHash returns a 40 hex character reference. It is not derived from
// entry content and proves nothing about integrity.
func RandomHash(rng *rand.Rand) string {
	buf := make([]byte, 20)
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}
	return hex.EncodeToString(buf)
}
