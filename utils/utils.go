package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/MohdFer/cargo-management/types"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GenerateTrackingID returns a human-facing shipment identifier of the form
// "TRK" followed by 8 random decimal digits. Uniqueness is enforced by the
// database; callers retry on a duplicate.
func GenerateTrackingID() string {
	const digits = "0123456789"
	b := make([]byte, 8)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return "TRK" + string(b)
}

// GenerateInvoiceNumber returns "INV" plus the first 6 characters of a UUID.
func GenerateInvoiceNumber() string {
	return "INV" + uuid.NewString()[:6]
}

// GenerateTicketNumber returns "TKT" plus the first 6 characters of a UUID.
func GenerateTicketNumber() string {
	return "TKT" + uuid.NewString()[:6]
}

// HashPassword returns the bcrypt hash of the given password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// sanitizeRequestBody redacts request bodies that carry credentials so they
// never reach the audit log in plain text.
func sanitizeRequestBody(c *fiber.Ctx) string {
	body := string(c.Body())
	if strings.Contains(body, "password") {
		return "[REDACTED_CREDENTIALS]"
	}
	return body
}

// CreateSanitizedLogEntry creates a deep copied and sanitized log entry for
// the async audit logger.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	// Deep copy everything; fasthttp reuses its buffers between requests.
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(c)
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}
